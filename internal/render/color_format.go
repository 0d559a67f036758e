package render

import (
	"strconv"
	"strings"
)

func rgbString(r, g, b uint8) string {
	var sb strings.Builder
	sb.WriteString("rgb(")
	sb.WriteString(strconv.Itoa(int(r)))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(int(g)))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(int(b)))
	sb.WriteByte(')')
	return sb.String()
}

func rgbaString(r, g, b uint8, a float64) string {
	var sb strings.Builder
	sb.WriteString("rgba(")
	sb.WriteString(strconv.Itoa(int(r)))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(int(g)))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(int(b)))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
	sb.WriteByte(')')
	return sb.String()
}
