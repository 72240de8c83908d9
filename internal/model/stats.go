package model

import "encoding/json"

// Statistics — агрегаты, посчитанные на стороне хранилища.
// Сервис отдаёт их как есть и не трактует содержимое.
type Statistics = json.RawMessage
