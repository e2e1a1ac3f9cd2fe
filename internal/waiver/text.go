// Package waiver holds the liability waiver and exports signed copies.
package waiver

// Title heads the waiver screen and the exported document.
const Title = "Liability Waiver"

// Text is the release every participant signs before booking.
const Text = `RELEASE OF LIABILITY, WAIVER OF CLAIMS, ASSUMPTION OF RISKS AND INDEMNITY AGREEMENT

By signing this waiver, I acknowledge that:

1. I understand that dance classes involve physical activity and may involve risk of injury.

2. I am voluntarily participating in dance classes offered by Dance With Helen.

3. I understand that I should consult with my physician before beginning any exercise program.

4. I agree to assume all risks associated with my participation in the dance classes.

5. I release Dance With Helen, its instructors, and staff from any and all liability for any injury, loss, or damage that may occur during my participation.

6. I understand that this waiver applies to each class I attend and must be signed before each booking.

I have read and understood this waiver and agree to its terms.`
