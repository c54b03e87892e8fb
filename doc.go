// Package folio provides top-level metadata for the Folio Content API.
//
// @title Folio Content API
// @version dev
// @description Webhook ingestion, webhook history and cache revalidation for the portfolio site.
// @BasePath /
// @securityDefinitions.apikey OperatorAuth
// @in header
// @name Authorization
// @description Provide the operator bearer token as `Bearer <token>`.
package folio
