package main

// General API documentation for swaggo. Run `swag init` to generate docs.
//
// @title           adsd API
// @version         1.0
// @description     HTTP control and status surface for the ad lifecycle daemon.
//
// @contact.name   adsd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
