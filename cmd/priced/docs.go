package main

// General API documentation for swaggo. Run swag against this package to
// regenerate docs.
//
// @title           priced API
// @version         1.0
// @description     HTTP API for house price prediction from a pre-trained linear regression model.
//
// @contact.name   priced maintainers
// @contact.url    https://github.com/your-org/priced
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
