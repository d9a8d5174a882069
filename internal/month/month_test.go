package month

import (
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2024-05", true},
		{"2024-13", true}, // sem validação de calendário
		{"0000-00", true},
		{"2024-5", false},
		{"24-05", false},
		{"", false},
		{"2024-05-01", false},
		{"2024/05", false},
		{" 2024-05", false},
		{"2024-05\n", false},
		{"abcd-ef", false},
		{"２０２４-０５", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.in))
		})
	}
}

func TestGuard(t *testing.T) {
	assert.Equal(t, Decision{Proceed: true}, Guard("2024-05"))
	assert.Equal(t, Decision{Proceed: true}, Guard("2024-13"))
	assert.Equal(t, Decision{Proceed: false, RedirectTo: "/"}, Guard(""))
	assert.Equal(t, Decision{Proceed: false, RedirectTo: "/"}, Guard("maio"))

	// O redirecionamento é sempre o mesmo, sem acumular estado
	for i := 0; i < 3; i++ {
		assert.Equal(t, "/", Guard("2024-5").RedirectTo)
	}
}

func TestContext(t *testing.T) {
	t.Run("sem mês", func(t *testing.T) {
		c := FromParams(httprouter.Params{})

		assert.Equal(t, "", c.Month())
		assert.False(t, c.IsValidMonth())
		assert.Equal(t, "/", c.NavigateTo("/trainees"))
	})

	t.Run("com mês válido", func(t *testing.T) {
		c := FromParams(httprouter.Params{{Key: "month", Value: "2024-05"}})

		assert.Equal(t, "2024-05", c.Month())
		assert.True(t, c.IsValidMonth())
		assert.Equal(t, "/trainees/2024-05", c.NavigateTo("/trainees"))
		assert.Equal(t, "/schedule/2024-05", c.NavigateTo("/schedule/"))
	})

	t.Run("com mês inválido ainda navega", func(t *testing.T) {
		c := Of("2024-5")

		assert.False(t, c.IsValidMonth())
		assert.Equal(t, "/import/2024-5", c.NavigateTo("/import"))
	})

	t.Run("projeção acompanha a rota", func(t *testing.T) {
		first := FromParams(httprouter.Params{{Key: "month", Value: "2024-05"}})
		second := FromParams(httprouter.Params{{Key: "month", Value: "2024-06"}})

		assert.Equal(t, "/availability/2024-05", first.NavigateTo("/availability"))
		assert.Equal(t, "/availability/2024-06", second.NavigateTo("/availability"))
	})
}
