package domain

// Attribute keys for the request context threaded through the surrounding
// request-processing layers. The pool neither reads nor writes these; they are defined
// here so interceptors on both sides of a lease agree on the names.
const (
	AttrRoute               = "http.route"
	AttrCookieStore         = "http.cookie-store"
	AttrCredentialsProvider = "http.auth.credentials-provider"
	AttrTargetAuthState     = "http.auth.target-scope"
	AttrProxyAuthState      = "http.auth.proxy-scope"
	AttrUserToken           = "http.user-token"
	AttrRequestConfig       = "http.request-config"
)
