package memstore

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"emperor_bespoke_v1/internal/model"
)

// 深拷贝工具：记录在存入与读出时都会复制，
// 保证 get(id) 两次读取得到逐位相同且互不影响的副本。

func cloneInt64Ptr(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneTimePtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneJSON(j datatypes.JSON) datatypes.JSON {
	if j == nil {
		return nil
	}
	c := make(datatypes.JSON, len(j))
	copy(c, j)
	return c
}

func cloneStringArray(a pq.StringArray) pq.StringArray {
	if a == nil {
		return nil
	}
	c := make(pq.StringArray, len(a))
	copy(c, a)
	return c
}

func cloneUser(u *model.User) *model.User {
	c := *u
	c.Phone = cloneStringPtr(u.Phone)
	c.Preferences = cloneJSON(u.Preferences)
	c.LastLoginAt = cloneTimePtr(u.LastLoginAt)
	return &c
}

func cloneMeasurement(m *model.Measurement) *model.Measurement {
	c := *m
	c.User = nil
	return &c
}

func cloneCategory(pc *model.ProductCategory) *model.ProductCategory {
	c := *pc
	c.ParentID = cloneInt64Ptr(pc.ParentID)
	c.Parent = nil
	return &c
}

func cloneProduct(p *model.Product) *model.Product {
	c := *p
	c.SalePrice = cloneInt64Ptr(p.SalePrice)
	c.Features = cloneStringArray(p.Features)
	c.Tags = cloneStringArray(p.Tags)
	c.CustomizationOptions = cloneJSON(p.CustomizationOptions)
	c.Category = nil
	return &c
}

func cloneFabric(f *model.Fabric) *model.Fabric {
	c := *f
	return &c
}

func cloneDesign(d *model.CustomDesign) *model.CustomDesign {
	c := *d
	c.FabricID = cloneInt64Ptr(d.FabricID)
	c.MeasurementID = cloneInt64Ptr(d.MeasurementID)
	c.Details = cloneJSON(d.Details)
	c.User = nil
	c.Product = nil
	c.Fabric = nil
	c.Measurement = nil
	return &c
}

func cloneAppointment(a *model.Appointment) *model.Appointment {
	c := *a
	c.DesignID = cloneInt64Ptr(a.DesignID)
	c.User = nil
	c.Design = nil
	return &c
}

func cloneOrder(o *model.Order) *model.Order {
	c := *o
	c.ShippingAddress = cloneJSON(o.ShippingAddress)
	c.BillingAddress = cloneJSON(o.BillingAddress)
	c.CompletedAt = cloneTimePtr(o.CompletedAt)
	c.User = nil
	c.Items = nil
	return &c
}

func cloneOrderItem(i *model.OrderItem) *model.OrderItem {
	c := *i
	c.ProductID = cloneInt64Ptr(i.ProductID)
	c.DesignID = cloneInt64Ptr(i.DesignID)
	c.Order = nil
	c.Product = nil
	c.Design = nil
	return &c
}

func cloneCollection(col *model.Collection) *model.Collection {
	c := *col
	c.LaunchDate = cloneTimePtr(col.LaunchDate)
	return &c
}

func cloneTestimonial(t *model.Testimonial) *model.Testimonial {
	c := *t
	c.ProductID = cloneInt64Ptr(t.ProductID)
	c.CollectionID = cloneInt64Ptr(t.CollectionID)
	c.Product = nil
	c.Collection = nil
	return &c
}
