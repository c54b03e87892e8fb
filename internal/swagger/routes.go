package swagger

import (
	"encoding/json"
	"fmt"
	"strings"

	"folio/internal/env"
	"folio/internal/errmsg"
	"folio/internal/logger"
	"folio/internal/swagger/docs"
	"folio/internal/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

const swaggerUIPath = "https://unpkg.com/swagger-ui-dist@5"

// docInstance names the swag registration served at /api/docs/doc.json.
var docInstance = docs.SwaggerInfo.InstanceName()

var uiTemplate = fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Folio Content API Docs</title>
  <link rel="stylesheet" href="%s/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="%s/swagger-ui-bundle.js"></script>
  <script src="%s/swagger-ui-standalone-preset.js"></script>
  <script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '/api/docs/doc.json',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIStandalonePreset],
      layout: 'StandaloneLayout',
      deepLinking: true,
      displayRequestDuration: true,
      persistAuthorization: true,
      requestInterceptor: (req) => {
        const authHeader = req.headers && req.headers.Authorization;
        if (authHeader && !/^Bearer /i.test(authHeader)) {
          req.headers.Authorization = 'Bearer ' + authHeader;
        }
        return req;
      },
    });
  };
  </script>
</body>
</html>`, swaggerUIPath, swaggerUIPath, swaggerUIPath)

// Register wires swagger-ui routes backed by the registered swag document.
func Register(router fiber.Router) {
	if router == nil {
		return
	}

	router.Get("/api/docs", func(c fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.SendString(uiTemplate)
	})

	router.Get("/api/docs/doc.json", func(c fiber.Ctx) error {
		if version := strings.TrimSpace(env.VERSION); version != "" {
			docs.SwaggerInfo.Version = version
		}

		doc, err := swag.ReadDoc(docInstance)
		if err != nil {
			logger.Lg.Error("swagger_doc_failed", zap.String("instance", docInstance), zap.Error(err))
			return utils.StatusError(c, errmsg.SwaggerDocUnavailable)
		}

		c.Type("json", "utf-8")
		return c.Send(applyDocDefaults([]byte(doc)))
	})
}

func applyDocDefaults(data []byte) []byte {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return data
	}

	doc["basePath"] = "/"
	if host, ok := doc["host"].(string); ok && host == "" {
		delete(doc, "host")
	}

	encoded, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return data
	}

	if len(encoded) == 0 || encoded[len(encoded)-1] != '\n' {
		encoded = append(encoded, '\n')
	}

	return encoded
}
