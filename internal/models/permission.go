package models

type Permission string

const (
	PermissionLogin               Permission = "login"
	PermissionLogout              Permission = "logout"
	PermissionViewLabs            Permission = "view_labs"
	PermissionSubmitAccessRequest Permission = "submit_access_request"
	PermissionApproveAccessReq    Permission = "approve_access_request"
	PermissionRejectAccessReq     Permission = "reject_access_request"
	PermissionCreateBooking       Permission = "create_booking"
	PermissionApproveBooking      Permission = "approve_booking"
	PermissionViewAllBookings     Permission = "view_all_bookings"
	PermissionManageEquipment     Permission = "manage_equipment"
	PermissionManageLabs          Permission = "manage_labs"
	PermissionManageUsers         Permission = "manage_users"
)
