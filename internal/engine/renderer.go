package engine

import (
	"fmt"

	"sprite-server/pkg/scene"
)

// Renderer - внешний производитель артефактов сцены (image-провайдер,
// проксирующий слой и т.п.). Ядро не производит пикселей само: оно только
// передает дескриптор и сохраняет полученную непрозрачную ссылку в кэш.
type Renderer interface {
	RenderScene(d scene.Descriptor) (string, error)
}

// PlaceholderRenderer - офлайн-заглушка: детерминированный текстовый
// артефакт вместо похода к провайдеру. Используется в тестах и при
// запуске без внешнего рендера.
type PlaceholderRenderer struct{}

func (PlaceholderRenderer) RenderScene(d scene.Descriptor) (string, error) {
	return fmt.Sprintf("placeholder:%s:%s:%d,%d:%s",
		d.Lighting, d.TimeOfDay, d.View.Pos.X, d.View.Pos.Y, d.View.Facing), nil
}
