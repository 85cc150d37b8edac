package clock

import "time"

// Clock abstrae time.Now para que los use cases estampen tiempo inyectado
// y los tests puedan fijarlo de forma determinista.
type Clock interface {
	Now() time.Time
}

// System usa el reloj del sistema.
type System struct{}

// Now devuelve time.Now().
func (System) Now() time.Time { return time.Now() }

// Fixed devuelve siempre el mismo instante. Pensado para tests.
type Fixed struct {
	T time.Time
}

// Now devuelve el instante fijado.
func (f Fixed) Now() time.Time { return f.T }
