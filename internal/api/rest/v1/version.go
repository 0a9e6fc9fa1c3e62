package v1

// BasePath is the route prefix of the version 1 API
const BasePath = "/api/v1/cl"
