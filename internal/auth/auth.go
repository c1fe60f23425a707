// Package auth guards the local API: an optional operator password with a
// JWT session cookie, and a per-IP request rate limit.
package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

const (
	cookieName = "session_token"
	sessionTTL = 30 * 24 * time.Hour
	operator   = "operator"
)

type Authenv struct {
	JWTkey []byte
	// PasswordHash is the operator's bcrypt hash. Empty disables login and
	// leaves every route open.
	PasswordHash string
	SecureCookie bool
}

type IPRateLimiter struct {
	ips map[string]*rate.Limiter
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type Loginrequest struct {
	Password string `json:"password"`
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*rate.Limiter),
		r:   r,
		b:   b,
	}
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.ips[ip]
	if !exists {
		limiter = rate.NewLimiter(i.r, i.b)
		i.ips[ip] = limiter
	}
	return limiter
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Rate limiting middleware
func (i *IPRateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i.getLimiter(clientIP(r)).Allow() {
			http.Error(w, "Too Many Requests. Try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (env *Authenv) Enabled() bool { return env.PasswordHash != "" }

func (env *Authenv) isValidToken(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return env.JWTkey, nil
	})
	if err != nil {
		log.Println("Token parse error:", err)
		return false
	}
	if sub, _ := token.Claims.GetSubject(); sub != operator {
		return false
	}
	return token.Valid
}

// AuthMiddleware rejects requests without a valid session cookie when a
// password is configured.
func (env *Authenv) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !env.Enabled() {
			next.ServeHTTP(w, r)
			return
		}
		cookie, err := r.Cookie(cookieName)
		if err != nil || !env.isValidToken(cookie.Value) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (env *Authenv) addCookie(w http.ResponseWriter) error {
	expiration := time.Now().Add(sessionTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": operator,
		"exp": expiration.Unix(),
	})
	tokenString, err := token.SignedString(env.JWTkey)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    tokenString,
		Expires:  expiration,
		Path:     "/",
		HttpOnly: true,
		Secure:   env.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (env *Authenv) AuthHandler(w http.ResponseWriter, r *http.Request) {
	if !env.Enabled() {
		http.Error(w, "Login is disabled", http.StatusNotFound)
		return
	}
	var req Loginrequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		http.Error(w, "Password required", http.StatusBadRequest)
		return
	}
	err := bcrypt.CompareHashAndPassword([]byte(env.PasswordHash), []byte(req.Password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		http.Error(w, "Invalid password", http.StatusUnauthorized)
		return
	}
	if err != nil {
		log.Printf("Operator password hash is unusable: %v", err)
		http.Error(w, "Login unavailable", http.StatusInternalServerError)
		return
	}
	if err := env.addCookie(w); err != nil {
		log.Println("Token creation error:", err)
		http.Error(w, "Login unavailable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Authentication successful"))
}

func (env *Authenv) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   env.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
