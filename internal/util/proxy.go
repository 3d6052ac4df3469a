package util

import (
	"net/http"
	"net/url"

	"golang.org/x/net/http/httpproxy"
)

// NewProxyFunc creates a proxy function based on configuration.
// If no proxy URLs are provided, falls back to HTTP_PROXY, HTTPS_PROXY and
// NO_PROXY from the environment. noProxy is honoured in both cases.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" && noProxy == "" {
		return http.ProxyFromEnvironment
	}

	env := httpproxy.FromEnvironment()
	if httpProxy != "" {
		env.HTTPProxy = httpProxy
	}
	if httpsProxy != "" {
		env.HTTPSProxy = httpsProxy
	}
	if noProxy != "" {
		env.NoProxy = noProxy
	}

	proxyFunc := env.ProxyFunc()
	return func(req *http.Request) (*url.URL, error) {
		return proxyFunc(req.URL)
	}
}
