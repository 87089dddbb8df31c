package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.ngrok.com/ngrok/v2"
)

// startNgrokForward publica o servidor local num endpoint ngrok até ctx ser cancelado.
func startNgrokForward(ctx context.Context, token string, port int, logger *zap.Logger) error {
	agent, err := ngrok.NewAgent(
		ngrok.WithAuthtoken(token),
		ngrok.WithAutoConnect(true),
	)
	if err != nil {
		return fmt.Errorf("erro criando ngrok Agent: %w", err)
	}

	upstream := ngrok.WithUpstream(fmt.Sprintf("http://127.0.0.1:%d", port))

	endpoint, err := agent.Forward(ctx, upstream)
	if err != nil {
		var ngErr ngrok.Error
		if errors.As(err, &ngErr) {
			logger.Error("[NGROK] erro ao criar forward", zap.Any("code", ngErr.Code()), zap.Error(ngErr))
		}
		return fmt.Errorf("erro iniciando ngrok Forward: %w", err)
	}

	logger.Info("[NGROK] Endpoint online", zap.Any("url", endpoint.URL()))

	<-ctx.Done()

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := endpoint.CloseWithContext(closeCtx); err != nil {
		return fmt.Errorf("erro ao fechar endpoint ngrok: %w", err)
	}
	if err := agent.Disconnect(); err != nil {
		return fmt.Errorf("erro ao desconectar ngrok Agent: %w", err)
	}
	return nil
}
