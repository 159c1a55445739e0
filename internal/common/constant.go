package common

// AuthorizationHeader is the HTTP header carrying the caller's credential
// on cart routes.
const AuthorizationHeader = "Authorization"

// BearerPrefix is the expected scheme prefix of the Authorization header.
const BearerPrefix = "Bearer "
