package acess_log

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RayTraceKey é a chave do código de rastreio no contexto do gin.
	RayTraceKey    = "ray_trace_code"
	RayTraceHeader = "X-Ray-Trace"
)

// Middleware gera o código de rastreio da requisição e registra o acesso
// ao final do processamento.
func Middleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rayTrace := c.GetHeader(RayTraceHeader)
		if _, err := uuid.Parse(rayTrace); err != nil {
			rayTrace = uuid.NewString()
		}
		c.Set(RayTraceKey, rayTrace)
		c.Header(RayTraceHeader, rayTrace)

		c.Next()

		fields := []zap.Field{
			zap.String("ray_trace", rayTrace),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.String("ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.Float64("latency_ms", float64(time.Since(start).Microseconds())/1000),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("[ACCESS]", fields...)
		case status >= 400:
			logger.Warn("[ACCESS]", fields...)
		default:
			logger.Info("[ACCESS]", fields...)
		}
	}
}

// RayTrace retorna o código de rastreio da requisição atual, ou nil
// quando o middleware não foi aplicado.
func RayTrace(c *gin.Context) *string {
	v, ok := c.Get(RayTraceKey)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}
