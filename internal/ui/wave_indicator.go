package ui

import (
	"fmt"
	"strings"

	"go-bunny-defense/internal/config"
	"go-bunny-defense/internal/render"
	"go-bunny-defense/pkg/utils"
)

// WaveIndicator shows the current wave out of the total in Roman numerals.
type WaveIndicator struct {
	Center utils.Vec2
}

func NewWaveIndicator() *WaveIndicator {
	return &WaveIndicator{Center: utils.Vec2{X: config.ScreenWidth - 110, Y: indicatorY}}
}

// toRoman converts a positive integer to Roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Label formats the indicator text. Nothing is shown before the first wave
// and the number is capped at the total once the last wave is over.
func (i *WaveIndicator) Label(wave, total int) string {
	if wave <= 0 {
		return ""
	}
	wave = min(wave, total)
	return fmt.Sprintf("wave %s / %s", toRoman(wave), toRoman(total))
}

func (i *WaveIndicator) Draw(s render.Surface, wave, total int) {
	label := i.Label(wave, total)
	if label == "" {
		return
	}
	drawShadowed(s, label, config.HUDFontSize, i.Center, config.TextOneColor)
}
