package swagger

// @Tag.name Meta
// @Tag.description Liveness and version checks.

// @Tag.name Webhook
// @Tag.description Repository webhook ingestion and the stored delivery history.

// @Tag.name Cache
// @Tag.description Manual revalidation of cached renders.
