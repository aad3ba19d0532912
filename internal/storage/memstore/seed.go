package memstore

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"emperor_bespoke_v1/internal/model"
)

// Seed 写入一组固定的演示数据，仅供本地开发手工调试使用。
// 正确性相关的测试一律使用空库，不依赖这里的任何记录。
func (s *Store) Seed() error {
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("生成演示密码失败: %w", err)
	}

	phone := "+442071234567"
	user := &model.User{
		Username:       "johndoe",
		Password:       string(hashed),
		Email:          "john.doe@example.com",
		FirstName:      "John",
		LastName:       "Doe",
		Phone:          &phone,
		MembershipTier: model.TierGold,
		Preferences:    datatypes.JSON(`{"fit":"relaxed","contact":"email"}`),
	}
	if err := s.CreateUser(ctx, user); err != nil {
		return err
	}

	measurement := &model.Measurement{
		UserID:    user.ID,
		Name:      "商务西装",
		Chest:     106.5,
		Waist:     86.0,
		Hips:      101.5,
		Inseam:    81.0,
		Shoulders: 47.0,
		Sleeve:    63.5,
		Neck:      40.5,
		Bicep:     34.0,
		Wrist:     17.5,
		Thigh:     58.0,
		Height:    180.0,
		Weight:    78.0,
		Notes:     "Client prefers a slightly looser fit around the chest.",
		IsDefault: true,
	}
	if err := s.CreateMeasurement(ctx, measurement); err != nil {
		return err
	}

	// --- 分类 ---
	suits := &model.ProductCategory{Name: "Suits", Slug: "suits", Description: "Premium bespoke suits for every occasion", SortOrder: 1, IsActive: true}
	shirts := &model.ProductCategory{Name: "Shirts", Slug: "shirts", Description: "Handcrafted shirts made from the finest fabrics", SortOrder: 2, IsActive: true}
	formal := &model.ProductCategory{Name: "Formal Wear", Slug: "formal-wear", Description: "Elegant attire for the most special occasions", SortOrder: 3, IsActive: true}
	for _, c := range []*model.ProductCategory{suits, shirts, formal} {
		if err := s.CreateCategory(ctx, c); err != nil {
			return err
		}
	}

	// --- 商品 ---
	executiveSuit := &model.Product{
		CategoryID:  suits.ID,
		Name:        "Executive Suit",
		Description: "A sophisticated suit designed for the modern professional.",
		BasePrice:   249900,
		SKU:         "SUIT-EXEC-001",
		Slug:        "executive-suit",
		Stock:       12,
		Features:    []string{"Hand-stitched lapels", "Full canvas construction", "Surgeon cuffs", "Custom monogramming"},
		Tags:        []string{"suit", "business"},
		Featured:    true,
		IsActive:    true,
	}
	classicShirt := &model.Product{
		CategoryID:  shirts.ID,
		Name:        "Classic Dress Shirt",
		Description: "The foundation of every gentleman's wardrobe.",
		BasePrice:   34900,
		SKU:         "SHIRT-CLAS-001",
		Slug:        "classic-dress-shirt",
		Stock:       40,
		Features:    []string{"Premium Egyptian cotton", "Mother-of-pearl buttons", "Reinforced collar"},
		Tags:        []string{"shirt"},
		IsActive:    true,
	}
	tuxedo := &model.Product{
		CategoryID:  formal.ID,
		Name:        "The Sovereign Tuxedo",
		Description: "Our pinnacle evening wear for life's most memorable occasions.",
		BasePrice:   329900,
		SKU:         "FORM-TUXE-001",
		Slug:        "sovereign-tuxedo",
		Stock:       6,
		Features:    []string{"Barathea wool", "Grosgrain peak lapels", "Custom silk lining"},
		Tags:        []string{"tuxedo", "evening"},
		Featured:    true,
		IsActive:    true,
	}
	for _, p := range []*model.Product{executiveSuit, classicShirt, tuxedo} {
		if err := s.CreateProduct(ctx, p); err != nil {
			return err
		}
	}

	// --- 面料 ---
	navyWool := &model.Fabric{Name: "Navy Wool", Type: "Wool", Color: "Navy", Pattern: "Solid", Price: 18000, Composition: "100% Merino Wool", Origin: "Italy", Available: true, LeadTime: 14, MinQuantity: 1}
	charcoalTwill := &model.Fabric{Name: "Charcoal Twill", Type: "Wool", Color: "Charcoal", Pattern: "Twill", Price: 16000, Composition: "100% Wool", Origin: "England", Available: true, LeadTime: 10, MinQuantity: 1}
	brownHerringbone := &model.Fabric{Name: "Brown Herringbone", Type: "Wool", Color: "Brown", Pattern: "Herringbone", Price: 19000, Composition: "90% Wool 10% Cashmere", Origin: "Scotland", Available: true, LeadTime: 21, MinQuantity: 1}
	for _, f := range []*model.Fabric{navyWool, charcoalTwill, brownHerringbone} {
		if err := s.CreateFabric(ctx, f); err != nil {
			return err
		}
	}

	// --- 定制方案 ---
	design := &model.CustomDesign{
		UserID:        user.ID,
		ProductID:     executiveSuit.ID,
		FabricID:      &navyWool.ID,
		MeasurementID: &measurement.ID,
		Name:          "Navy Executive Suit",
		Details:       datatypes.JSON(`{"lapelStyle":"Peak","vents":"Side","buttons":"Two","monogram":"JD","monogramPlacement":"Cuff"}`),
		Price:         executiveSuit.BasePrice + navyWool.Price,
	}
	if err := s.CreateDesign(ctx, design); err != nil {
		return err
	}

	// --- 预约 ---
	appointment := &model.Appointment{
		UserID:   user.ID,
		Date:     time.Now().AddDate(0, 0, 7),
		TimeSlot: "14:00-15:00",
		Type:     model.AppointmentConsultation,
		Notes:    "Client interested in the Executive Collection",
		DesignID: &design.ID,
		Duration: 60,
	}
	if err := s.CreateAppointment(ctx, appointment); err != nil {
		return err
	}

	// --- 订单 ---
	qty := 1
	item := model.OrderItem{
		ProductID:     &executiveSuit.ID,
		DesignID:      &design.ID,
		Quantity:      qty,
		UnitPrice:     executiveSuit.BasePrice,
		FabricCost:    navyWool.Price,
		TailoringCost: 12000,
	}
	item.Subtotal = item.ComputeSubtotal()
	order := &model.Order{
		UserID:      user.ID,
		OrderNumber: "ORD-20260101-SEED01",
		Subtotal:    item.Subtotal,
		Tax:         27990,
		Shipping:    0,
		Discount:    10000,
		Status:      model.OrderInProgress,
		PaymentStatus: model.PaymentPaid,
		Notes:       "Rush order for client's upcoming business trip",
		Items:       []model.OrderItem{item},
	}
	order.Total = order.ComputeTotal()
	if err := s.CreateOrder(ctx, order); err != nil {
		return err
	}

	// --- 系列 ---
	launch := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	executiveCol := &model.Collection{Name: "The Executive", Slug: "the-executive", Description: "Precision-cut suits that command presence in any boardroom.", Tagline: "Essential elegance for the modern leader", Image: "/images/collections/executive.jpg", Featured: true, Season: "Spring", Year: 2026, IsActive: true, LaunchDate: &launch}
	heritageCol := &model.Collection{Name: "The Heritage", Slug: "the-heritage", Description: "Pieces that honor centuries of tailoring tradition.", Tagline: "Timeless silhouettes with modern sensibility", Image: "/images/collections/heritage.jpg", Featured: true, Season: "Autumn", Year: 2025, IsActive: true}
	sovereignCol := &model.Collection{Name: "The Sovereign", Slug: "the-sovereign", Description: "Meticulously crafted evening and ceremonial garments.", Tagline: "Ceremonial splendor for life's grandest moments", Image: "/images/collections/sovereign.jpg", Featured: true, Season: "Winter", Year: 2025, IsActive: true}
	for _, c := range []*model.Collection{executiveCol, heritageCol, sovereignCol} {
		if err := s.CreateCollection(ctx, c); err != nil {
			return err
		}
	}

	// --- 评价 ---
	testimonials := []*model.Testimonial{
		{Name: "Rahul Mehta", Location: "Mumbai, India", Testimonial: "The attention to detail is unmatched. My wedding sherwani was beyond what I could have envisioned.", Rating: 5, Featured: true, DisplayOrder: 1},
		{Name: "James Richardson", Location: "London, UK", Testimonial: "From the initial consultation to the final fitting, the experience is exceptional.", Rating: 5, Featured: true, ProductID: &executiveSuit.ID, DisplayOrder: 2},
		{Name: "David Chen", Location: "Singapore", Testimonial: "The fabric, the construction, the way it moves with you. An investment in how you present yourself.", Rating: 4, Featured: true, CollectionID: &sovereignCol.ID, DisplayOrder: 3},
	}
	for _, t := range testimonials {
		if err := s.CreateTestimonial(ctx, t); err != nil {
			return err
		}
	}

	return nil
}
