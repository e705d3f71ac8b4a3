package host

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/adinfinit/lightlab/app"
)

func TestTranslateKey(t *testing.T) {
	assert.Equal(t, app.KeyEscape, TranslateKey(glfw.KeyEscape))
	assert.Equal(t, app.Key1, TranslateKey(glfw.Key1))
	assert.Equal(t, app.Key4, TranslateKey(glfw.Key4))
	assert.Equal(t, app.Key2, TranslateKey(glfw.KeyKP2))
	assert.Equal(t, app.KeyUnknown, TranslateKey(glfw.Key5))
	assert.Equal(t, app.KeyUnknown, TranslateKey(glfw.KeySpace))
}
