package sentiment

import (
	"os"
	"path/filepath"
	"testing"
)

// setupTestModel grava um artefato de modelo temporário para os testes
func setupTestModel(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sentiment.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec
		t.Fatalf("falha ao criar o artefato de teste: %v", err)
	}
	return path
}

const modeloTeste = `{
  "bias": 0.0,
  "threshold": 0.5,
  "weights": {
    "otimo": 2.0,
    "excelente": 2.0,
    "ruim": -2.0,
    "pessimo": -2.0
  }
}`

func TestLoad(t *testing.T) {
	t.Run("carrega artefato válido", func(t *testing.T) {
		classifier, err := Load(setupTestModel(t, modeloTeste))
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if classifier == nil {
			t.Fatal("esperava classificador não nulo")
		}
	})

	t.Run("falha quando o arquivo não existe", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "inexistente.json")); err == nil {
			t.Fatal("esperava erro de leitura")
		}
	})

	t.Run("falha com JSON malformado", func(t *testing.T) {
		if _, err := Load(setupTestModel(t, "{não é json")); err == nil {
			t.Fatal("esperava erro de parse")
		}
	})

	t.Run("threshold ausente assume 0.5", func(t *testing.T) {
		classifier, err := Load(setupTestModel(t, `{"bias": 0, "weights": {}}`))
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if classifier.threshold != 0.5 {
			t.Errorf("esperava threshold 0.5, obteve %v", classifier.threshold)
		}
	})
}

func TestPredict(t *testing.T) {
	classifier, err := Load(setupTestModel(t, modeloTeste))
	if err != nil {
		t.Fatalf("falha ao carregar o modelo de teste: %v", err)
	}

	t.Run("texto com termos positivos recebe rótulo positivo", func(t *testing.T) {
		sentiment, err := classifier.Predict("Serviço ÓTIMO, atendimento excelente!")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if !sentiment.Label {
			t.Error("esperava rótulo positivo")
		}
		if sentiment.Score <= 0.5 {
			t.Errorf("esperava score acima do threshold, obteve %v", sentiment.Score)
		}
	})

	t.Run("texto com termos negativos recebe rótulo negativo", func(t *testing.T) {
		sentiment, err := classifier.Predict("pessimo, muito ruim")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if sentiment.Label {
			t.Error("esperava rótulo negativo")
		}
		if sentiment.Score >= 0.5 {
			t.Errorf("esperava score abaixo do threshold, obteve %v", sentiment.Score)
		}
	})

	t.Run("acentos não impedem o casamento com o vocabulário", func(t *testing.T) {
		acentuado, err := classifier.Predict("Moto ótima, serviço péssimo não")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		plano, err := classifier.Predict("Moto otima, servico pessimo nao")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if acentuado.Score != plano.Score {
			t.Errorf("esperava o mesmo score, obteve %v e %v", acentuado.Score, plano.Score)
		}
	})

	t.Run("texto positivo acentuado recebe rótulo positivo", func(t *testing.T) {
		sentiment, err := classifier.Predict("Serviço ótimo e excelente!")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if !sentiment.Label {
			t.Error("esperava rótulo positivo")
		}
	})

	t.Run("tokenização ignora pontuação e maiúsculas", func(t *testing.T) {
		a, err := classifier.Predict("OTIMO!!!")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		b, err := classifier.Predict("otimo")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if a.Score != b.Score {
			t.Errorf("esperava o mesmo score, obteve %v e %v", a.Score, b.Score)
		}
	})

	t.Run("palavras desconhecidas não pesam no score", func(t *testing.T) {
		neutro, err := classifier.Predict("moto azul entregue ontem")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if neutro.Score != 0.5 {
			t.Errorf("esperava score neutro 0.5 com bias zero, obteve %v", neutro.Score)
		}
	})
}
