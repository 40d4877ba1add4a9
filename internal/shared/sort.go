package shared

// Константы для сортировки фотокниги
type SortOption string

const (
	SortUploadedNew SortOption = "uploaded_new"
	SortUploadedOld SortOption = "uploaded_old"
	SortRandom      SortOption = "random"
	DefaultSort     SortOption = SortUploadedNew
)

// Валидные значения сортировки
var ValidSorts = map[SortOption]struct{}{
	SortUploadedNew: {},
	SortUploadedOld: {},
	SortRandom:      {},
}
