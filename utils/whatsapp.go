package utils

import (
	"fmt"
	"net/url"
	"strings"

	"verduleria/models"

	"github.com/shopspring/decimal"
)

// FormatFraction renders a quantity the way it is spoken at the counter:
// "1/2" instead of "0.5". The denominator is limited to 4; quantities that
// do not approximate well fall back to plain decimal notation.
func FormatFraction(qty decimal.Decimal) string {
	for _, den := range []int64{1, 2, 3, 4} {
		num := qty.Mul(decimal.NewFromInt(den))
		if num.Equal(num.Round(0)) {
			if den == 1 {
				return num.Round(0).String()
			}
			return fmt.Sprintf("%s/%d", num.Round(0).String(), den)
		}
	}
	return qty.String()
}

func unitLabel(unit string) string {
	if unit == models.UnitKg {
		return "Kg"
	}
	return "u"
}

// BuildOrderSummary formats the owner-facing order message. The same text is
// used for the WhatsApp link and the optional e-mail notification.
func BuildOrderSummary(order *models.Order) string {
	var items strings.Builder
	for _, it := range order.Items {
		fmt.Fprintf(&items, "- %s %s de %s = $%s\n",
			FormatFraction(it.Quantity), unitLabel(it.Unit), it.ProductName, it.LineTotal.StringFixed(2))
	}

	var delivery string
	if order.Place == models.PlacePickup {
		pickup := "a convenir"
		if order.PickupTime != nil {
			pickup = *order.PickupTime
		}
		delivery = fmt.Sprintf("🕐 Retiro en el local: %s", pickup)
	} else {
		address := ""
		if order.DeliveryAddress != nil {
			address = *order.DeliveryAddress
		}
		delivery = fmt.Sprintf("🚚 Delivery a: %s", address)
	}

	note := "Sin notas"
	if order.Note != nil && *order.Note != "" {
		note = *order.Note
	}

	return fmt.Sprintf(
		"🧺 *Nuevo pedido*\n\n"+
			"✅ *Pedido #%d*\n\n"+
			"👤 Cliente: %s\n"+
			"📞 Teléfono: %s\n"+
			"%s\n"+
			"💳 Forma de pago: %s\n\n"+
			"📦 *Detalle del pedido:*\n%s\n"+
			"💰 *Total:* $%s\n"+
			"📝 Nota del cliente: %s",
		order.DailyNumber,
		order.CustomerName,
		order.Phone,
		delivery,
		order.PaymentMethod,
		items.String(),
		order.Total.StringFixed(2),
		note,
	)
}

// BuildWhatsAppURL returns the wa.me deep-link that opens a chat with the
// shop owner, pre-filled with the order summary.
func BuildWhatsAppURL(ownerNumber string, order *models.Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", ownerNumber, url.QueryEscape(BuildOrderSummary(order)))
}
