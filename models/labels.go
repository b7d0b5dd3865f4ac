package models

// Label returns the Portuguese display name of the category
func (t TitheType) Label() string {
	switch t {
	case TitheTypeDizimo:
		return "Dízimo"
	case TitheTypeOferta:
		return "Oferta"
	case TitheTypeCampanha:
		return "Campanha"
	case TitheTypeCantina:
		return "Cantina"
	case TitheTypeLivraria:
		return "Livraria"
	case TitheTypeOutro:
		return "Outro"
	}
	return string(t)
}

// Label returns the Portuguese display name of the method.
// An unset method reads as cash.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentMethodCheque:
		return "Cheque"
	case PaymentMethodPix:
		return "PIX"
	case PaymentMethodDinheiro, "":
		return "Dinheiro"
	}
	return string(m)
}

// ServiceLabel names the service of the receipt
func (d TithesReceiptData) ServiceLabel() string {
	switch d.ServiceType {
	case ServiceTypeDomingo:
		return "Domingo"
	case ServiceTypeQuinta:
		return "Quinta-Feira"
	case ServiceTypeSabado:
		return "Sábado"
	case ServiceTypeOutro:
		if d.OtherServiceDescription != "" {
			return d.OtherServiceDescription
		}
		return "Outro"
	}
	return string(d.ServiceType)
}

// DayLabel names the payment day of the sheet
func (d PaymentSheetData) DayLabel() string {
	switch d.DayOfWeek {
	case DayOfWeekSegunda:
		return "Segunda"
	case DayOfWeekSexta:
		return "Sexta"
	case DayOfWeekOutro:
		if d.CustomDay != "" {
			return d.CustomDay
		}
		return "Outro"
	}
	return ""
}
