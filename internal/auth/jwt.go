// Package auth emite e valida a sessão do painel. O sistema é de operador
// único, então o login não confere credenciais: apenas estabelece a sessão e
// protege a API local contra chamadas de outras origens.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Servico assina e valida os tokens de sessão.
type Servico struct {
	segredo []byte
}

func NewServico(segredo string) *Servico {
	return &Servico{segredo: []byte(segredo)}
}

type Claims struct {
	Usuario string `json:"usuario"`
	jwt.RegisteredClaims
}

// GerarToken gera um JWT com validade de 24h
func (s *Servico) GerarToken(usuario string) (string, error) {
	claims := &Claims{
		Usuario: usuario,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.segredo)
}

// ValidarToken valida o token e retorna as claims
func (s *Servico) ValidarToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.segredo, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("não foi possível extrair claims")
	}
	return claims, nil
}
