package common

// UsernameHeaderName is the gRPC metadata key carrying the caller's username.
// Used as the identity fallback when no session token accompanies the call.
const UsernameHeaderName = "username"

// SessionTokenHeaderName is the gRPC metadata key used to carry the session
// token minted by Login on outbound requests, and to return it to the client
// in the Login response header.
const SessionTokenHeaderName = "session_token"
