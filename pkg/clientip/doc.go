// Package clientip resolves the originating client address of a request
// when the API runs behind one or more reverse proxies.
//
// A Resolver walks its header list in order and returns the first valid
// address, falling back to the TCP peer in RemoteAddr. The default list is
// tuned for Cloudflare in front of a managed platform:
//
//	CF-Connecting-IP
//	DO-Connecting-IP
//	X-Forwarded-For (the first valid entry)
//	X-Real-IP
//
// Deployments that are reached directly should use WithoutProxyHeaders so
// clients cannot spoof their address. The rate limiter keys on it.
//
// Middleware stores the resolved address in the request context:
//
//	r.Use(clientip.Middleware(clientip.New()))
//	ip := clientip.FromContext(r.Context())
package clientip
