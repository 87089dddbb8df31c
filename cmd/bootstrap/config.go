package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"fichas-crud/internal/cadastro/domain/ficha"
	"fichas-crud/internal/infra/database/postgres"
)

const envPrefix = "FICHAS"

// Settings é a configuração já validada da aplicação.
type Settings struct {
	AppName     string
	Env         string
	HTTPPort    string
	CORSOrigins []string
	LogLevel    string
	Postgres    postgres.Config
	Fichas      ficha.Options
	NgrokLive   bool
	NgrokToken  string
}

// Environment configura e lê o arquivo de configuração (configs.json).
// Sem arquivo, valem os padrões e as variáveis FICHAS_*; found indica se
// algum arquivo foi lido.
func Environment(v *viper.Viper, configFile string) (found bool, err error) {
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("configs")
		v.SetConfigType("json")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/") // Para ambientes de produção
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("fatal error in configuration file: %w", err)
	}
	return true, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "fichas-crud")
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http.port", "3000")
	v.SetDefault("server.cors.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("databases.postgres.host", "localhost")
	v.SetDefault("databases.postgres.port", "5432")
	v.SetDefault("databases.postgres.user", "postgres")
	v.SetDefault("databases.postgres.db_name", "fichas_db")
	v.SetDefault("databases.postgres.ssl_mode", postgres.SSLDisable)
	v.SetDefault("databases.postgres.max_open_conns", 10)
	v.SetDefault("databases.postgres.max_idle_conns", 5)
	v.SetDefault("databases.postgres.conn_max_lifetime_min", 30)
	v.SetDefault("fichas.batch_atomic", true)
	v.SetDefault("fichas.strict_status", false)
}

// LoadSettings converte as chaves do viper em Settings.
func LoadSettings(v *viper.Viper) (Settings, error) {
	env := v.GetString("app.env")
	switch env {
	case "dev", "prod":
	case "":
		env = "dev"
	default:
		return Settings{}, fmt.Errorf("valor inválido para app.env '%s': use 'dev' ou 'prod'", env)
	}

	port := v.GetString("server.http.port")
	if port == "" {
		return Settings{}, errors.New("server.http.port não configurado")
	}

	return Settings{
		AppName:     v.GetString("app.name"),
		Env:         env,
		HTTPPort:    port,
		CORSOrigins: v.GetStringSlice("server.cors.allowed_origins"),
		LogLevel:    v.GetString("log.level"),
		Postgres: postgres.Config{
			Host:            v.GetString("databases.postgres.host"),
			Port:            v.GetString("databases.postgres.port"),
			User:            v.GetString("databases.postgres.user"),
			Password:        v.GetString("databases.postgres.pwd"),
			DBName:          v.GetString("databases.postgres.db_name"),
			SSLMode:         v.GetString("databases.postgres.ssl_mode"),
			MaxOpenConns:    v.GetInt("databases.postgres.max_open_conns"),
			MaxIdleConns:    v.GetInt("databases.postgres.max_idle_conns"),
			ConnMaxLifetime: time.Duration(v.GetInt64("databases.postgres.conn_max_lifetime_min")) * time.Minute,
			Debug:           env == "dev",
		},
		Fichas: ficha.Options{
			AtomicBatch:  v.GetBool("fichas.batch_atomic"),
			StrictStatus: v.GetBool("fichas.strict_status"),
		},
		NgrokLive:  v.GetBool("test.ngrok.live"),
		NgrokToken: v.GetString("test.ngrok.token"),
	}, nil
}
