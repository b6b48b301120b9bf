// token emite un JWT firmado con JWT_SECRET para usar las rutas de escritura del catálogo.
//
// Uso: go run ./cmd/token --user <id> [--role editor|admin]
// La expiración (JWT_EXPIRATION_MINUTES) y el emisor (JWT_ISSUER) salen de la configuración.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/jwt"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

func main() {
	userID := pflag.StringP("user", "u", "", "ID del usuario (claim user_id)")
	role := pflag.StringP("role", "r", "editor", "rol del token: admin o editor")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	if *userID == "" {
		log.Fatal().Msg("--user es obligatorio")
	}
	if *role != "admin" && *role != "editor" {
		log.Fatal().Str("role", *role).Msg("rol inválido (admin|editor)")
	}

	tok, err := jwt.Generate(cfg.JWT.Secret, *userID, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		log.Fatal().Err(err).Msg("generar token")
	}
	log.Info().
		Str("user_id", *userID).
		Str("role", *role).
		Int("expires_in_minutes", cfg.JWT.Expiration).
		Msg("token emitido")
	fmt.Println(tok)
}
