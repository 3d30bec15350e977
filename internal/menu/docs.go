// Package menu keeps the shop's listed pizzas and tells subscribed listeners
// whenever the listing changes.
//
// Two menus exist: the pizza menu ("New pizza added to menu: ...") and the
// specials menu ("New special added: ..."). Listeners receive plain text
// messages; Customer and Website write them to the structured log, and
// ListenerFunc adapts any closure.
//
//	pizzas := menu.NewPizzaMenu()
//	pizzas.AddListener(menu.NewWebsite(logger))
//	pizzas.Add(pepperoni) // Website updated: New pizza added to menu: Pepperoni Pizza (...)
package menu
