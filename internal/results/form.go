package results

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"

	"github.com/vovakirdan/match-league/internal/engine"
)

// Form is the form-encoded result body.
type Form struct {
	Score     int    `schema:"puntuacion,required"`
	Elapsed   int    `schema:"tiempo,required"`
	Moves     int    `schema:"movimientos,required"`
	Completed bool   `schema:"completado,required"`
	BatchID   int64  `schema:"idLote,omitempty"`
	Player    string `schema:"jugador,omitempty"`
	Tier      string `schema:"dificultad,omitempty"`
}

var (
	encoder = schema.NewEncoder()
	decoder = newDecoder()
)

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}

// NewForm builds the form for a result.
func NewForm(r engine.Result) Form {
	return Form{
		Score:     r.Score,
		Elapsed:   r.ElapsedSeconds,
		Moves:     r.Moves,
		Completed: r.Completed,
		BatchID:   r.BatchID,
		Player:    r.Player,
		Tier:      string(r.Tier),
	}
}

// Encode returns the form as url.Values.
func (f Form) Encode() (url.Values, error) {
	values := url.Values{}
	if err := encoder.Encode(f, values); err != nil {
		return nil, fmt.Errorf("results: encode form: %w", err)
	}
	return values, nil
}

// DecodeForm parses a submitted form. Negative counters are rejected.
func DecodeForm(values url.Values) (Form, error) {
	var f Form
	if err := decoder.Decode(&f, values); err != nil {
		return f, fmt.Errorf("results: decode form: %w", err)
	}
	if f.Score < 0 || f.Elapsed < 0 || f.Moves < 0 {
		return f, fmt.Errorf("%w: negative score, time or moves", ErrRejected)
	}
	return f, nil
}

// Result converts the form back to an engine result.
func (f Form) Result() engine.Result {
	return engine.Result{
		Summary: engine.Summary{
			Score:          f.Score,
			ElapsedSeconds: f.Elapsed,
			Moves:          f.Moves,
			Completed:      f.Completed,
		},
		Player:  f.Player,
		Tier:    engine.Tier(f.Tier),
		BatchID: f.BatchID,
	}
}
