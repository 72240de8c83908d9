package auth

import (
	"errors"
	"os"
	"path/filepath"
)

// FileTokenStore — файловое хранилище токена сессии для CLI.
type FileTokenStore struct {
	// Dir переопределяет каталог хранения; пусто — каталог конфигурации пользователя.
	Dir string
}

func (s FileTokenStore) path() (string, error) {
	dir := s.Dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, "OrderKeeper")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "auth_token"), nil
}

// Save сохраняет токен в файл.
func (s FileTokenStore) Save(token string) error {
	if token == "" {
		return errors.New("empty token")
	}
	p, err := s.path()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load читает токен из файла.
func (s FileTokenStore) Load() (string, error) {
	p, err := s.path()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	return string(b), nil
}
