package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "segredo-de-teste"

func testAuthConfig() AuthConfig {
	return AuthConfig{
		Secret:   testSecret,
		Issuer:   "tria-backend",
		Audience: "tria-frontend",
	}
}

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("falha ao assinar o token de teste: %v", err)
	}
	return signed
}

func validClaims() jwt.MapClaims {
	now := time.Now().UTC()
	return jwt.MapClaims{
		"sub":  "Admin",
		"uid":  float64(1),
		"role": "Administrador",
		"iss":  "tria-backend",
		"aud":  "tria-frontend",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
}

func performRequest(authHeader string) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/protegido", RequireAuth(testAuthConfig()), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint("user_id"),
			"role":    c.GetString("role"),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	t.Run("token válido libera a rota e popula o contexto", func(t *testing.T) {
		token := signTestToken(t, testSecret, validClaims())

		w := performRequest("Bearer " + token)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("cabeçalho ausente responde 401", func(t *testing.T) {
		w := performRequest("")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("esperava 401, obteve %d", w.Code)
		}
	})

	t.Run("esquema diferente de Bearer responde 401", func(t *testing.T) {
		w := performRequest("Basic abc123")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("esperava 401, obteve %d", w.Code)
		}
	})

	t.Run("token assinado com outra chave responde 401", func(t *testing.T) {
		token := signTestToken(t, "outra-chave", validClaims())

		w := performRequest("Bearer " + token)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("esperava 401, obteve %d", w.Code)
		}
	})

	t.Run("token expirado responde 401", func(t *testing.T) {
		claims := validClaims()
		claims["exp"] = time.Now().UTC().Add(-time.Minute).Unix()
		token := signTestToken(t, testSecret, claims)

		w := performRequest("Bearer " + token)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("esperava 401, obteve %d", w.Code)
		}
	})

	t.Run("issuer divergente responde 401", func(t *testing.T) {
		claims := validClaims()
		claims["iss"] = "outro-emissor"
		token := signTestToken(t, testSecret, claims)

		w := performRequest("Bearer " + token)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("esperava 401, obteve %d", w.Code)
		}
	})

	t.Run("audience divergente responde 401", func(t *testing.T) {
		claims := validClaims()
		claims["aud"] = "outro-publico"
		token := signTestToken(t, testSecret, claims)

		w := performRequest("Bearer " + token)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("esperava 401, obteve %d", w.Code)
		}
	})
}
