package sentiment

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/triafrota/tria-backend/internal/domain/ports"
)

// modelArtifact é o formato serializado do modelo treinado offline:
// regressão logística sobre bag-of-words
type modelArtifact struct {
	Bias      float64            `json:"bias"`
	Weights   map[string]float64 `json:"weights"`
	Threshold float64            `json:"threshold"`
}

// Classifier implementa ports.SentimentClassifier com um modelo
// linear carregado uma única vez do artefato. A instância é imutável
// após o load e segura para uso concorrente.
type Classifier struct {
	bias      float64
	weights   map[string]float64
	threshold float64
}

// Load lê o artefato do modelo do caminho configurado
func Load(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var artifact modelArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}

	if artifact.Threshold == 0 {
		artifact.Threshold = 0.5
	}

	return &Classifier{
		bias:      artifact.Bias,
		weights:   artifact.Weights,
		threshold: artifact.Threshold,
	}, nil
}

// Predict pontua o texto e devolve o rótulo binário com o score do
// modelo (probabilidade via sigmoide)
func (c *Classifier) Predict(text string) (ports.Sentiment, error) {
	sum := c.bias
	for _, token := range tokenize(text) {
		sum += c.weights[token]
	}

	score := 1.0 / (1.0 + math.Exp(-sum))

	return ports.Sentiment{
		Label: score >= c.threshold,
		Score: float32(score),
	}, nil
}

// removeDiacritics decompõe os caracteres acentuados e descarta as
// marcas combinantes. O vocabulário do artefato não usa diacríticos
var removeDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// tokenize reduz o texto a palavras minúsculas alfanuméricas sem acentos
func tokenize(text string) []string {
	folded, _, err := transform.String(removeDiacritics, strings.ToLower(text))
	if err != nil {
		folded = strings.ToLower(text)
	}
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
