package auth

import "adira_backend/internal/models"

// CanMutateProducts проверяет право изменять каталог товаров.
// Решение принимается по пользователю из БД, а не по claims токена,
// чтобы снятие staff-флага действовало сразу.
func CanMutateProducts(user *models.User) bool {
	return user.IsStaff
}
