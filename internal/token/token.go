// Package token implementa a credencial legada do sistema: um JSON com os
// dados do profissional codificado em Base64. Não é assinado nem cifrado e
// portanto é forjável. Fraqueza herdada, mantida por paridade de contrato
// com os clientes existentes.
package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/studioink/anamnese-api/internal/models"
)

var ErrInvalidToken = errors.New("token inválido")

type Claims struct {
	ID        uint   `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Timestamp int64  `json:"timestamp"`
}

// Generate emite o token de sessão para um profissional.
// Timestamp em milissegundos, como o Date.now() do frontend espera.
func Generate(p *models.Profissional) (string, error) {
	claims := Claims{
		ID:        p.ID,
		Nome:      p.Nome,
		Email:     p.Email,
		Timestamp: time.Now().UnixMilli(),
	}

	b, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Decode decodifica e valida estruturalmente um token. Qualquer falha de
// Base64/JSON ou id ausente resulta em ErrInvalidToken.
func Decode(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, ErrInvalidToken
	}

	var claims Claims
	if err := json.Unmarshal(b, &claims); err != nil {
		return nil, ErrInvalidToken
	}

	if claims.ID == 0 {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}
