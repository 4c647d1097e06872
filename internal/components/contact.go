package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactAnchor is the fragment that opens the contact dialog.
const ContactAnchor = "#contact"

// ContactDialog is the modal inquiry form. It is closed until a contact
// action targets it.
func ContactDialog(action, site string) g.Node {
	return g.El("dialog", ID("contact"), Class("contact-dialog"), Aria("labelledby", "contact-title"),
		Form(Method("post"), Action(action), Data("contact-form", ""), g.Attr("novalidate"),
			H2(ID("contact-title"), g.Text("Tell us what you're working on")),
			Input(Type("hidden"), Name("site"), Value(site)),
			field("contact-name", "Name", Input(ID("contact-name"), Name("name"), AutoComplete("name"), Required())),
			field("contact-email", "Email", Input(ID("contact-email"), Type("email"), Name("email"), AutoComplete("email"), Required())),
			field("contact-company", "Company", Input(ID("contact-company"), Name("company"), AutoComplete("organization"))),
			field("contact-topic", "Topic", Select(ID("contact-topic"), Name("topic"),
				Option(Value(""), g.Text("Choose one")),
				Option(Value("automation"), g.Text("Automating a workflow")),
				Option(Value("ai-prototype"), g.Text("Building an AI prototype")),
				Option(Value("training"), g.Text("Training the team")),
				Option(Value("other"), g.Text("Something else")),
			)),
			field("contact-message", "Message", Textarea(ID("contact-message"), Name("message"), Rows("5"), Required())),
			Div(Class("dialog-actions"),
				Button(Type("button"), Class("btn btn-ghost"), Data("action", "close"), g.Text("Cancel")),
				Button(Type("submit"), Class("btn btn-primary"), g.Text("Send")),
			),
			P(Class("form-message"), Role("status"), Aria("live", "polite")),
		),
	)
}

func field(id, label string, control g.Node) g.Node {
	return Div(Class("field"),
		Label(For(id), g.Text(label)),
		control,
	)
}
