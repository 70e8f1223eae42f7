// README: Place suggestions for the origin/destination inputs: popular spots first, then Maps predictions.
package places

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tabela/internal/maps"
	"tabela/internal/search"
)

const (
	// MaxSuggestions caps every suggestion list.
	MaxSuggestions = 5
	// DefaultSuggestions is how many popular places a blank input shows.
	DefaultSuggestions = 4
)

// DefaultOrigin is where most long trips start.
const DefaultOrigin = "Aeroporto Internacional de Confins - Tancredo Neves"

// Popular are frequent pickup and drop-off points, most requested first.
var Popular = []string{
	DefaultOrigin,
	"Rodoviária de Belo Horizonte",
	"Shopping Cidade, Belo Horizonte",
	"BH Shopping, Belvedere",
	"Expominas, Gameleira",
	"Mineirão - Estádio Governador Magalhães Pinto",
	"Praça da Liberdade, Savassi",
	"Inhotim, Brumadinho",
	"Savassi, Belo Horizonte",
	"Centro, Belo Horizonte",
	"Vila da Serra, Nova Lima",
	"Lagoa Santa",
	"Vespasiano",
	"Santa Luzia",
	"Betim Centro",
}

type Autocompleter interface {
	Autocomplete(ctx context.Context, input string) ([]maps.Prediction, error)
}

type Service struct {
	popular []string
	places  Autocompleter
	log     *zap.Logger
}

// NewService builds a suggester. places may be nil, in which case only
// popular locations are suggested.
func NewService(popular []string, places Autocompleter, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{popular: popular, places: places, log: log}
}

// Suggest returns at most MaxSuggestions place names for a partial input.
func (s *Service) Suggest(ctx context.Context, input string) []string {
	needle := search.Normalize(input)
	if needle == "" {
		return head(s.popular, DefaultSuggestions)
	}

	out := make([]string, 0, MaxSuggestions)
	seen := make(map[string]bool)
	add := func(name string) {
		key := search.Normalize(name)
		if key == "" || key == needle || seen[key] || len(out) >= MaxSuggestions {
			return
		}
		seen[key] = true
		out = append(out, name)
	}

	for _, p := range s.popular {
		if strings.Contains(search.Normalize(p), needle) {
			add(p)
		}
	}

	if s.places != nil && len(out) < MaxSuggestions {
		preds, err := s.places.Autocomplete(ctx, input)
		if err != nil {
			s.log.Warn("place autocomplete failed", zap.String("input", input), zap.Error(err))
		}
		for _, p := range preds {
			add(p.Description)
		}
	}
	return out
}

func head(list []string, n int) []string {
	if len(list) < n {
		n = len(list)
	}
	return append([]string(nil), list[:n]...)
}
