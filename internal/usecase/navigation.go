package usecase

import (
	"farm-storefront/internal/data/entity"
	"farm-storefront/internal/dto/response"
)

var (
	linkHome           = response.NavLink{Label: "Home", Path: "/"}
	linkProducts       = response.NavLink{Label: "Products", Path: "/products"}
	linkAbout          = response.NavLink{Label: "About", Path: "/about"}
	linkLogin          = response.NavLink{Label: "Login", Path: "/login"}
	linkRegister       = response.NavLink{Label: "Register", Path: "/register"}
	linkVerifyEmail    = response.NavLink{Label: "Verify Email", Path: "/get_email_otp"}
	linkCart           = response.NavLink{Label: "Cart", Path: "/cart"}
	linkOrders         = response.NavLink{Label: "Orders", Path: "/customer/orders"}
	linkManageOrders   = response.NavLink{Label: "Manage Orders", Path: "/staff/orders"}
	linkAddProduct     = response.NavLink{Label: "Add Product", Path: "/staff/products/new"}
	linkDeliveryOrders = response.NavLink{Label: "Delivery Orders", Path: "/delivery/orders"}
	linkEarnings       = response.NavLink{Label: "Earnings", Path: "/delivery/earnings"}
	linkDashboard      = response.NavLink{Label: "Dashboard", Path: "/admin"}
	linkManageUsers    = response.NavLink{Label: "Manage Users", Path: "/admin/users"}
	linkDriverPayments = response.NavLink{Label: "Driver Payments", Path: "/admin/payments"}
)

// Navigation computes the navbar for a profile; nil means logged out.
func Navigation(profile *entity.Profile) response.NavigationResponse {
	links := []response.NavLink{linkHome, linkProducts}

	if profile == nil {
		links = append(links, linkLogin, linkRegister, linkAbout)
		return response.NavigationResponse{Links: links}
	}

	if !profile.IsEmailVerified {
		links = append(links, linkVerifyEmail)
	}

	switch profile.Role {
	case entity.RoleCustomer:
		if profile.IsEmailVerified {
			links = append(links, linkCart, linkOrders)
		}
	case entity.RoleStaff:
		links = append(links, linkManageOrders, linkAddProduct)
	case entity.RoleDelivery:
		links = append(links, linkDeliveryOrders, linkEarnings)
	case entity.RoleAdmin:
		links = append(links, linkDashboard, linkManageUsers, linkManageOrders, linkDriverPayments)
	}

	links = append(links, linkAbout)
	return response.NavigationResponse{
		Links:      links,
		LoggedInAs: profile.Username,
		CanLogout:  true,
	}
}

// LandingFor is where a fresh login is sent.
func LandingFor(role entity.Role) string {
	switch role {
	case entity.RoleStaff:
		return linkManageOrders.Path
	case entity.RoleDelivery:
		return linkDeliveryOrders.Path
	case entity.RoleAdmin:
		return linkDashboard.Path
	default:
		return linkHome.Path
	}
}
