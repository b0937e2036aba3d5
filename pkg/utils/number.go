package utils

import (
	"errors"
	"strconv"
	"strings"
)

// Clamp força value para o intervalo fechado [low, high]
func Clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// ParseIntOrDefault devolve fallback quando raw está vazio ou não é um inteiro.
// Inteiros fora da faixa de int saturam em math.MinInt/math.MaxInt.
func ParseIntOrDefault(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return value
		}
		return fallback
	}
	return value
}
