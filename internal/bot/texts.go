package bot

import "github.com/thespread/spreadbot/internal/orders"

// weekdayLabels are the emoji reply-keyboard labels for category selection.
var weekdayLabels = map[orders.Weekday]string{
	orders.Monday:    "😭 Monday",
	orders.Tuesday:   "😞 Tuesday",
	orders.Wednesday: "😕 Wednesday",
	orders.Thursday:  "😬 Thursday",
	orders.Friday:    "😍 Friday",
}

// deliveryLocations are the four accepted delivery points. The keyboard also
// shows N/A but only these four advance the payment conversation.
var deliveryLocations = []string{
	"Temasek Life Labs",
	"BIZ 2",
	"Innovation Building",
	"Apec Building",
}

// itemExtras maps an item name to its optional add-on keyboard entries.
// Every extras keyboard ends with N/A.
var itemExtras = map[string][]string{
	"Double-Decker White Sandwich":       {"Egg Salad", "Tuna Mayo"},
	"Penne Quattro Formaggi (4 Cheeses)": {"+ Smoked Turkey Bacon"},
	"Spaghetti Pomodoro with Burrata":    {"+ Beef Steak Slices"},
}

const (
	msgClosed = "We are currently closed. Please contact us during our " +
		"operating hours. Thank you for your understanding!"

	msgStart = "Hi @%s, I am a bot that helps you place your order at " +
		"The Spread.\r\n\r\n" +
		"• /menu to check the menu.\r\n" +
		"• /order to place your order.\r\n" +
		"• /cart to check your cart.\r\n" +
		"• /offers to view available deals.\r\n" +
		"• /pay to proceed to payment.\r\n" +
		"• /cancel to cancel your order.\r\n" +
		"• /terms to read our Terms & Conditions.\r\n\r\n" +
		"Our operating hours is on 0800-2100hrs during weekdays.\r\n\r\n" +
		"By interacting with this bot, you confirm your consent to our " +
		"Terms & Conditions. If you need support, please contact us at " +
		"+6569085955."

	msgAdminHelp = "These are the possible admin commands:\r\n\r\n" +
		"• /purge to purge the order list.\r\n" +
		"• /editmenu to edit the menu options.\r\n" +
		"• /deletepaiduser <user_id> to delete the delivered orders of a specific user.\r\n" +
		"• /vieworderlist to display the current order list.\r\n"

	msgTerms = "<b>TERMS & CONDITIONS</b>\r\n\r\n" +
		"1. All prices are quoted in 🇸🇬Singapore dollars, unless otherwise " +
		"stated.\r\n\r\n" +
		"2. Discounts, offers, prizes, gifts, complimentary items, vouchers, " +
		"rebates, redemptions and privileges are non-redeemable for cash, " +
		"non-transferable, non-assignable and non-exchangeable. Prizes, " +
		"gifts, complimentary items, vouchers, rebate letters and redemption " +
		"letters are non-replaceable if lost, stolen or damaged.\r\n\r\n" +
		"3. Offers are not valid with other on-going promotions, discounts, " +
		"vouchers, rebates, privilege cards, loyalty programmes, set-menus, " +
		"in-house offers, functions, banquets or catering functions, unless " +
		"otherwise stated.\r\n\r\n" +
		"4. The Spread may vary these terms & conditions or discontinue any " +
		"promotions/privileges at any time without any notice or liability " +
		"to any party.\r\n\r\n" +
		"5. The Spread's decision on all matters relating to its discounts, " +
		"offers, prizes, gifts, complimentary items, vouchers, rebates, " +
		"redemptions and privileges shall be final and binding.\r\n\r\n" +
		"6. The Spread is not responsible for any misuse or abuse of this " +
		"bot. The onus is on the customer to utilize the bot properly.\r\n\r\n" +
		"7. The Spread ensures that all information is securely transmitted " +
		"through this official bot and is only used for ordering purposes. " +
		"Only The Spread and the customer can access these confidential " +
		"information.\r\n\r\n" +
		"8. All information is correct at time of print."

	msgNoOffers = "Currently, there are no offers available. Stay tuned!"

	msgAskCategory = "Which category would you like to order?"

	msgAskQuantity = "Please enter the quantity for the item that you ordered."

	msgQuantityTooBig = "Your quantity value is too big. Please enter a valid value."

	msgAskRemarks = "Please write any remarks that you want to add. You can " +
		"also choose from the options available in the reply keyboard. If " +
		"you have nothing to add, please select N/A.\r\n\r\n" +
		"NOTE: Do limit your remarks to 700 characters."

	msgOrderReceived = "Your order has been received. You can either add " +
		"more items, check your cart, proceed to payment or cancel your " +
		"order. Do take note that only orders with successful payment will " +
		"be considered."

	msgCompletePrevious = "Please complete your previous order first."

	msgEmptyCart = "Your cart is currently empty. Please order an item first."

	msgMissingQuantity = "You have not entered any valid quantity value for " +
		"the item that you have ordered."

	msgCancelled = "Your order has been cancelled.\r\n\r\n" +
		"NOTE: Only your orders with pending payment status are cancelled."

	msgAskFullName = "Before payment, we need to collect your details for " +
		"contact purposes.\r\n\r\nPlease enter your full name."

	msgAskContact = "Please input your 8-digit Singapore-based contact number."

	msgAskTime = "Before payment, please select a valid time of collection " +
		"for all of your orders."

	msgInvalidTime = "You have inputted an invalid time. Please select a " +
		"valid time of collection for all of your orders."

	msgAskLocation = "Please indicate your location for delivery purposes. " +
		"Do take note that delivery is only available for the NUS Business " +
		"School campus area."

	msgInvoice = "<b>The Spread Bot - Payment Invoice</b>\r\n\r\n%s\r\n\r\n" +
		"Total Payable: <b>$%s</b>\r\n\r\n" +
		"Please pay using the following dynamically-generated QR Code. " +
		"You may use PayLah for payment method."

	msgAskReceipt = "After payment, please take a screenshot of your " +
		"receipt/successful payment page and send the image here for " +
		"verification purposes.\r\n\r\n" +
		"NOTE: Please send a legitimate image (not as a file). Failure to " +
		"comply will lead to your order being nullified without any " +
		"compensations."

	msgPaid = "Thank you for your payment! Please show your proof of " +
		"transaction to the waiter at The Spread as proof to collect your " +
		"order. After collecting your order, please allow the waiter to " +
		"delete the screenshot. Have a nice day ahead and enjoy your " +
		"meal!\r\n\r\nWARNING: Do not delete the image yourself before " +
		"collecting your order, as it will render your order invalid!"

	msgPurged = "Order list has been successfully purged!\r\n\r\n" +
		"Please purge the order list daily so as to prevent too much lag. " +
		"Thank you!"

	msgEditMenuPrompt = "Please send a photo with a caption following this " +
		"template:\r\n\r\n<category> - <name> - <price>"

	msgEditMenuBadFormat = "Please follow the aforementioned message format!"

	msgDeletePaidTemplate = "Please specify the User ID of whom delivered " +
		"orders you are deleting!\r\n\r\nTemplate:\r\n/deletepaiduser <user_id>"

	msgDeletePaidBadID = "Please enter a valid User ID integer value!"

	msgRoot = "This text is meant to be sent only to this bot's superadmin. " +
		"If you manage to find this, congratulations! You broke the bot! " +
		"Please inform the maintainer immediately about this issue. Thank you!"

	superAdminRemarkSuffix = " (P.S. Bot speaking here. Please treat this " +
		"guy nicely as he is literally my creator. Thank you!)"

	adminRemarkSuffix = " (P.S. Bot speaking here. Please treat this person " +
		"nicely as he/she is literally your boss. Thank you!)"
)
