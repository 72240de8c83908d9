package repo

import "context"

// Notifier отправляет внеполосное уведомление о прибытии ключа.
// Само письмо формирует и рассылает удалённая сторона.
type Notifier interface {
	CreateKeyStatusChangeNotification(ctx context.Context, orderID, propertyName string) error
}

type notifier struct {
	client *Client
}

// NewNotifier создаёт отправителя уведомлений поверх табличного API.
func NewNotifier(c *Client) Notifier {
	return &notifier{client: c}
}

func (n *notifier) CreateKeyStatusChangeNotification(ctx context.Context, orderID, propertyName string) error {
	payload := map[string]any{
		"orderId":      orderID,
		"propertyName": propertyName,
	}
	_, _, err := n.client.call(ctx, "createKeyStatusChangeNotification", payload)
	return err
}
