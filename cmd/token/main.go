// token emite un JWT de sesión para uno de los usuarios de demostración.
//
// Uso: go run ./cmd/token [u1|u2|u3]
// Lee JWT_SECRET, JWT_ISSUER y JWT_EXPIRATION_MINUTES de la misma configuración que la API.
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/Inventario-multimarca/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-multimarca/pkg/config"
	"github.com/jhoicas/Inventario-multimarca/pkg/jwt"
)

func main() {
	userID := "u1"
	if len(os.Args) > 1 {
		userID = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET requerido")
		os.Exit(1)
	}

	for _, a := range memory.DemoActors() {
		if a.ID != userID {
			continue
		}
		brands := make([]string, 0, len(a.Brands))
		for _, b := range a.Brands {
			brands = append(brands, string(b))
		}
		tok, err := jwt.Generate(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration, jwt.Identity{
			UserID:   a.ID,
			UserName: a.Name,
			Role:     string(a.Role),
			Brands:   brands,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%s (%s) %v\n", a.Name, a.Role, brands)
		fmt.Println(tok)
		return
	}
	fmt.Fprintf(os.Stderr, "usuario %q desconocido (u1, u2, u3)\n", userID)
	os.Exit(1)
}
