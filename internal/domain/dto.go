package domain

type OrderStatusType string

// Order states keep the wire values the mobile clients already send.
const (
	OrderStatusProcessing OrderStatusType = "En Proceso"
	OrderStatusAccepted   OrderStatusType = "Aceptado"
	OrderStatusRejected   OrderStatusType = "Rechazado"
)

type NotificationType string

const (
	NotificationActive    NotificationType = "activa"
	NotificationDismissed NotificationType = "desactivado"
)

type CardStatusType string

const (
	CardStatusActive   CardStatusType = "activo"
	CardStatusInactive CardStatusType = "inactivo"
)

type CardNetwork string

const (
	CardNetworkVisa       CardNetwork = "Visa"
	CardNetworkMasterCard CardNetwork = "MasterCard"
	CardNetworkUnknown    CardNetwork = "Desconocida"
)
