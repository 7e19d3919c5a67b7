package texto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizar(t *testing.T) {
	assert.Equal(t, "lideranca de nucleo", Normalizar("Liderança de Núcleo"))
	assert.Equal(t, "analista senior", Normalizar("  Analista Sênior "))
	assert.Equal(t, "", Normalizar(""))
}

func TestIgual(t *testing.T) {
	assert.True(t, Igual("Analista Sênior", "analista senior"))
	assert.True(t, Igual("LIDERANÇA DE CHAPTER", "Liderança de Chapter"))
	assert.False(t, Igual("Analista", "Consultor"))
}
