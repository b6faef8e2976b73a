package migration

import (
	"hoteltec/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.HotelModel{},
		&models.HotelCounterModel{},
		&models.ProductModel{},
		&models.OrderModel{},
		&models.PlanModel{},
		&models.SubscriptionModel{},
		&models.PaymentModel{},
		&models.CouponModel{},
		&models.CouponUsageModel{},
		&models.TicketModel{},
		&models.TicketCommentModel{},
		&models.TicketAttachmentModel{},
		&models.NotificationModel{},
	}
}
