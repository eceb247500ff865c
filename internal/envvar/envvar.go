package envvar

const (
	// SalescriptEnv is the environment variable used to determine the environment
	SalescriptEnv = "SALESCRIPT_ENV"

	// Port is the environment variable used to determine the HTTP port
	Port = "PORT"

	// DeploymentURL overrides the resolved base URL when the service runs
	// behind a hosting platform
	DeploymentURL = "DEPLOYMENT_URL"

	// Route is an optional path prefix applied by the hosting platform
	Route = "ROUTE"
)

// Provider endpoint variables set by the hosting platform. The composer
// is template-based and never reads them; they are named here so the
// platform contract is documented in one place.
const (
	AzureOpenAIEndpoint   = "AZURE_OPENAI_ENDPOINT"
	AzureOpenAIDeployment = "AZURE_OPENAI_DEPLOYMENT"
	AzureOpenAIAPIVersion = "AZURE_OPENAI_API_VERSION"
)
