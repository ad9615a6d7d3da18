// Package numeric приводит числовые значения, которые возвращает хранилище,
// к одному типу.
//
// Агрегаты (COUNT, AVG, MIN, MAX) приходят из драйвера как int64, float64,
// текст или NULL в зависимости от типа столбца. Value фиксирует этот набор
// на границе сканирования, дальше код работает только с Int64/Float64.
package numeric

import (
	"strconv"
	"strings"
	"unicode"
)

// Kind вариант значения.
type Kind uint8

const (
	Absent Kind = iota
	Integer
	Float
	Text
)

// Value сумма-тип: отсутствует | целое | дробное | текст.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Of строит Value из произвольного значения драйвера.
func Of(src any) Value {
	switch v := src.(type) {
	case nil:
		return Value{}
	case Value:
		return v
	case int64:
		return Value{kind: Integer, i: v}
	case int:
		return Value{kind: Integer, i: int64(v)}
	case int32:
		return Value{kind: Integer, i: int64(v)}
	case int16:
		return Value{kind: Integer, i: int64(v)}
	case uint32:
		return Value{kind: Integer, i: int64(v)}
	case float64:
		return Value{kind: Float, f: v}
	case float32:
		return Value{kind: Float, f: float64(v)}
	case string:
		return Value{kind: Text, s: v}
	case []byte:
		return Value{kind: Text, s: string(v)}
	default:
		return Value{}
	}
}

// Scan реализует sql.Scanner.
func (v *Value) Scan(src any) error {
	*v = Of(src)
	return nil
}

// Kind возвращает вариант значения.
func (v Value) Kind() Kind {
	return v.kind
}

// Float64 нормализует значение: числа как есть, текст по ведущему целому, остальное 0.
func (v Value) Float64() float64 {
	switch v.kind {
	case Integer:
		return float64(v.i)
	case Float:
		return v.f
	case Text:
		return float64(leadingInt(v.s))
	default:
		return 0
	}
}

// Int64 нормализует значение к целому. Дробные значения усекаются.
func (v Value) Int64() int64 {
	switch v.kind {
	case Integer:
		return v.i
	case Float:
		return int64(v.f)
	case Text:
		return leadingInt(v.s)
	default:
		return 0
	}
}

// leadingInt разбирает целое в начале строки: "7" -> 7, "12.5" -> 12, "abc" -> 0.
func leadingInt(s string) int64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
