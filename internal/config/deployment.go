package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ekisa-team/salescript/internal/envvar"
)

// DeploymentInfo describes where the service is reachable. It is surfaced
// by the root endpoint and the startup banner.
type DeploymentInfo struct {
	BaseURL     string `json:"base_url"`
	APIEndpoint string `json:"api_endpoint"`
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Version     string `json:"version"`
}

// BaseURL resolves the externally visible base URL. A DEPLOYMENT_URL
// environment override wins, with any trailing slash stripped; otherwise
// the service is assumed to be reachable on localhost at the given port.
func BaseURL(port int) string {
	if deploymentURL := os.Getenv(envvar.DeploymentURL); deploymentURL != "" {
		return strings.TrimRight(deploymentURL, "/")
	}
	return fmt.Sprintf("http://localhost:%d", port)
}

// RoutePrefix returns the optional ROUTE path prefix, normalized to start
// with a slash. It is empty when unset.
func RoutePrefix() string {
	route := os.Getenv(envvar.Route)
	if route == "" {
		return ""
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	return route
}

// ResolveDeployment builds the deployment info for the given port.
func ResolveDeployment(port int, version string) DeploymentInfo {
	base := BaseURL(port)

	environment := "local"
	if os.Getenv(envvar.DeploymentURL) != "" {
		environment = "hosted"
	}

	return DeploymentInfo{
		BaseURL:     base,
		APIEndpoint: base + "/api/sales-script",
		Environment: environment,
		Port:        port,
		Version:     version,
	}
}
