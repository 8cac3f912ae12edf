// Package main is the entry point for the enrollment API.
package main

// @title Enrollment API
// @version 2.0
// @description Student course enrollments with ADMIN/STUDENT access control.
// @BasePath /api/v2
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	Execute()
}
