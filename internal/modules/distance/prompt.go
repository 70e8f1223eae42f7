// README: Prompt construction for the driving-distance question sent to the model.
package distance

import (
	"fmt"
	"regexp"
	"strings"
)

// Marker is the label the model must put right before the final number.
const Marker = "RESULT_KM"

var coordinatesRe = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*,(\s*)(-?\d+(?:\.\d+)?)\s*$`)

// IsCoordinates reports whether s is a raw "lat, lng" pair. A pair needs a
// '.' in one component or a space after the comma, so a decimal comma such
// as "19,43" stays a plain number.
func IsCoordinates(s string) bool {
	m := coordinatesRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	return m[2] != "" || strings.Contains(m[1]+m[3], ".")
}

// BuildPrompt asks for the road distance between origin and destination.
// region disambiguates place names. search selects the closing instruction
// for a search-grounded call or a knowledge-only one.
func BuildPrompt(origin, destination, region string, search bool) string {
	origin = strings.TrimSpace(origin)
	destination = strings.TrimSpace(destination)

	from := fmt.Sprintf("%q", origin)
	if IsCoordinates(origin) {
		from = fmt.Sprintf("a localização atual do passageiro (coordenadas GPS %s)", origin)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tarefa: calcular a distância de carro (rodoviária, em km) entre %s e %q.\n", from, destination)
	if region != "" {
		fmt.Fprintf(&b, "Contexto: %s.\n", region)
	}
	b.WriteString("\nInstruções críticas:\n")
	b.WriteString("1. O valor será usado para calcular o preço de uma corrida de táxi.\n")
	b.WriteString("2. Use a distância pela estrada, nunca a distância em linha reta.\n")
	if region != "" {
		fmt.Fprintf(&b, "3. Se o nome de um lugar for ambíguo, assuma que fica em %s.\n", region)
	} else {
		b.WriteString("3. Se o nome de um lugar for ambíguo, escolha o mais conhecido.\n")
	}
	b.WriteString("4. Se não encontrar o endereço exato, use o centro da cidade ou um ponto de referência próximo.\n")
	fmt.Fprintf(&b, "5. Termine a resposta com uma linha no formato \"%s: <número>\", por exemplo \"%s: 150.5\".\n", Marker, Marker)

	if search {
		b.WriteString("\nUse o Google Search para encontrar a distância rodoviária exata e atualizada.")
	} else {
		b.WriteString("\nEstime a distância rodoviária aproximada com base no seu conhecimento de mapas e rotas.")
	}
	return b.String()
}
