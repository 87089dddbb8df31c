package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type HTTPServer struct {
	server *http.Server
	logger *zap.Logger
	ready  chan struct{}
	addr   net.Addr
}

func NewHTTPServer(port string, handler http.Handler, logger *zap.Logger) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{
			Addr:              net.JoinHostPort("", port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Start bloqueia até o servidor ser encerrado. Retorna nil quando o
// encerramento veio de Shutdown.
func (s *HTTPServer) Start() error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	s.logger.Info("[SERVER] Iniciando servidor", zap.String("addr", ln.Addr().String()))
	s.addr = ln.Addr()
	close(s.ready)

	if err := s.server.Serve(ln); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			s.logger.Info("[SERVER] Servidor finalizado.")
			return nil
		}
		return err
	}
	return nil
}

// Ready é fechado assim que o listener estiver aberto.
func (s *HTTPServer) Ready() <-chan struct{} {
	return s.ready
}

// Addr é o endereço efetivo do listener; só é válido depois de Ready.
func (s *HTTPServer) Addr() net.Addr {
	return s.addr
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.logger.Info("[SERVER] Encerrando servidor...")
	return s.server.Shutdown(ctx)
}
