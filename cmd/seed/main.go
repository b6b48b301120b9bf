// seed puebla la tabla categories con un conjunto inicial de categorías.
//
// Uso: go run ./cmd/seed [nombre ...]
// Sin argumentos inserta las categorías por defecto. Aplica el esquema antes de insertar
// y ejecuta todas las inserciones en una única transacción.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/category"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

var defaultCategories = []string{"Movie", "Documentary", "Series", "Short Film", "Animation"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	names := defaultCategories
	if len(os.Args) > 1 {
		names = os.Args[1:]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	// Todo o nada: una categoría inválida o duplicada revierte el lote completo.
	err = postgres.NewTxRunner(pool).Run(ctx, func(repo repository.CategoryRepository) error {
		create := category.NewCreateCategoryUseCase(repo)
		for _, name := range names {
			out, err := create.Execute(ctx, category.CreateCategoryInput{Name: name})
			if err != nil {
				return fmt.Errorf("insertar %q: %w", name, err)
			}
			log.Info().Str("id", out.ID).Str("name", out.Name).Msg("categoría insertada")
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed revertido")
	}
	log.Info().Int("inserted", len(names)).Msg("seed finalizado")
}
