package shared

// MaxShots — размер пленки: количество кадров на пользователя за событие
const MaxShots = 10

// DefaultEventName — название события по умолчанию (переопределяется EVENT_NAME)
const DefaultEventName = "Zapcom Offsite"
