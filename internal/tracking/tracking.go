// tracking.go
package tracking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const prefix = "PRCL"

// NewID genera un identificador legible: PRCL-YYYYMMDD-HEX6.
// La parte aleatoria sale de crypto/rand para que no sea adivinable;
// con 2^24 combinaciones por día no hace falta chequear colisiones.
func NewID() string {
	return newIDAt(time.Now().UTC())
}

func newIDAt(now time.Time) string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand no falla en la práctica; si falla, no hay fuente segura
		panic(err)
	}
	random := strings.ToUpper(hex.EncodeToString(buf))
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), random)
}
