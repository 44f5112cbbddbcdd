package pricing_fx

import (
	"context"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/api/controllers"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/services"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/utils"
)

var Module = fx.Provide(
	ProvideAIClient,
	ProvidePricingService,
	ProvidePricingController)

// AIConfig holds configuration for text generation clients
type AIConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideAIClient creates a text generation client based on environment
// variables. A missing API key is not fatal: the returned client rejects
// every call so the rest of the app stays usable. Clients holding a
// connection (Gemini) are closed on shutdown.
func ProvideAIClient(lc fx.Lifecycle) (utils.AIClientInterface, error) {
	config := getAIConfig()

	if config.APIKey == "" {
		log.Printf("No API key configured for %s provider, pricing generation is disabled", config.Provider)
	} else {
		log.Printf("Initializing %s client with model: %s", config.Provider, config.Model)
	}

	client, err := utils.NewAIClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, err
	}

	if closer, ok := client.(interface{ Close() error }); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return client, nil
}

// ProvidePricingService creates the pricing service with all dependencies
func ProvidePricingService(
	wizard services.WizardServiceInterface,
	aiClient utils.AIClientInterface,
) services.PricingServiceInterface {
	return services.NewPricingService(wizard, aiClient)
}

// ProvidePricingController creates the pricing controller
func ProvidePricingController(
	pricingService services.PricingServiceInterface,
) *controllers.PricingController {
	return controllers.NewPricingController(pricingService)
}

// getAIConfig reads configuration from environment variables
func getAIConfig() AIConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash-lite")
	}

	return AIConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
