package cripta

import "strings"

// permute собирает новое значение из битов value в порядке rule.
// Позиции в rule нумеруются с 1 от старшего бита, как в таблицах DES;
// width — разрядность входа. Результат имеет разрядность len(rule).
func permute(value uint64, rule []uint8, width uint) uint64 {
	var result uint64
	for _, pos := range rule {
		result = result<<1 | (value>>(width-uint(pos)))&1
	}
	return result
}

func rotateLeft28(half uint32, shifts uint) uint32 {
	return (half<<shifts | half>>(28-shifts)) & mask28
}

// FormatBinary возвращает младшие width бит value в двоичном виде,
// группами по 8 бит, начиная со старшего.
func FormatBinary(value uint64, width int) string {
	var sb strings.Builder
	for i := width - 1; i >= 0; i-- {
		if (value>>uint(i))&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if i > 0 && i%8 == 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
