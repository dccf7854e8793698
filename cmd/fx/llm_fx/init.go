package llm_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"hiddengems/internal/config"
	"hiddengems/pkg/utils"
)

var Module = fx.Provide(ProvideCompletionClient)

// ProvideCompletionClient picks the chat completion backend from LLM_PROVIDER.
func ProvideCompletionClient(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (utils.CompletionClientInterface, error) {
	client, err := utils.NewCompletionClient(utils.CompletionConfig{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey(),
		Model:    cfg.LLM.Model(),
		BaseURL:  cfg.LLM.OpenAIBaseURL,
	})
	if err != nil {
		return nil, err
	}

	log.Info("completion client ready",
		zap.String("provider", client.Provider()),
		zap.String("model", client.Model()))

	if closer, ok := client.(interface{ Close() error }); ok {
		lc.Append(fx.StopHook(closer.Close))
	}
	return client, nil
}
