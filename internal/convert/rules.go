package convert

// attrRule maps one dump attribute to one output attribute. The tables below
// enumerate every attribute the converter understands, so each rename and
// gating condition is a static, auditable contract. Tables apply in the order
// they are declared here, entries in listed order.
type attrRule struct {
	from string // key in the dump node
	to   string // key in the output node
}

// passthroughRules copy the value unchanged whenever the key is present,
// including explicit false/empty values.
var passthroughRules = []attrRule{
	{"name", "name"},
	{"nameFrom", "nameFrom"},
	{"description", "description"},
	{"descriptionFrom", "descriptionFrom"},
	{"selected", "selected"},
	{"grabbed", "grabbed"},
	{"characterOffsets", "characterOffsets"},
	{"accessKey", "accessKey"},
	{"autoComplete", "autoComplete"},
	{"checkedState", "checkedState"},
	{"checkedStateDescription", "checkedStateDescription"},
	{"childTreeId", "childTree"},
	{"className", "className"},
	{"containerLiveRelevant", "containerLiveRelevant"},
	{"containerLiveStatus", "containerLiveStatus"},
	{"display", "cssDisplay"},
	{"fontFamily", "fontFamily"},
	{"htmlTag", "htmlTag"},
	{"innerHtml", "innerHtml"},
	{"inputType", "inputType"},
	{"keyShortcuts", "keyShortcuts"},
	{"language", "language"},
	{"liveRelevant", "liveRelevant"},
	{"liveStatus", "liveStatus"},
	{"placeholder", "placeholder"},
	{"role", "customRole"},
	{"roleDescription", "roleDescription"},
	{"tooltip", "tooltip"},
	{"url", "url"},
	{"defaultActionVerb", "defaultActionVerb"},
	{"sortDirection", "sortDirection"},
	{"ariaCurrentState", "ariaCurrent"},
	{"haspopup", "hasPopup"},
	{"listStyle", "listStyle"},
	{"text-align", "textAlign"},
	{"valueForRange", "valueForRange"},
	{"minValueForRange", "minValueForRange"},
	{"maxValueForRange", "maxValueForRange"},
	{"stepValueForRange", "stepValueForRange"},
	{"fontSize", "fontSize"},
	{"fontWeight", "fontWeight"},
	{"textIndent", "textIndent"},
	{"indirectChildIds", "indirectChildren"},
	{"controlsIds", "controls"},
	{"detailsIds", "details"},
	{"describedbyIds", "describedBy"},
	{"flowtoIds", "flowTo"},
	{"labelledbyIds", "labelledBy"},
	{"radioGroupIds", "radioGroups"},
	{"textOverlineStyle", "overline"},
	{"textStrikethroughStyle", "strikethrough"},
	{"textUnderlineStyle", "underline"},
}

// flagRules copy the value only when it is truthy. For these, absence and
// false mean the same thing and both collapse to "no field".
var flagRules = []attrRule{
	{"value", "value"},
	{"autofillAvailable", "autofillAvailable"},
	{"default", "default"},
	{"editable", "editable"},
	{"focusable", "focusable"},
	{"hovered", "hovered"},
	{"ignored", "ignored"},
	{"invisible", "invisible"},
	{"linked", "linked"},
	{"multiline", "multiline"},
	{"multiselectable", "multiselectable"},
	{"protected", "protected"},
	{"required", "required"},
	{"visited", "visited"},
	{"busy", "busy"},
	{"nonatomicTextFieldRoot", "nonatomicTextFieldRoot"},
	{"containerLiveAtomic", "containerLiveAtomic"},
	{"containerLiveBusy", "containerLiveBusy"},
	{"liveAtomic", "liveAtomic"},
	{"modal", "modal"},
	{"canvasHasFallback", "canvasHasFallback"},
	{"scrollable", "scrollable"},
	{"clickable", "clickable"},
	{"clipsChildren", "clipsChildren"},
	{"notUserSelectableStyle", "notUserSelectableStyle"},
	{"selectedFromFocus", "selectedFromFocus"},
	{"isLineBreakingObject", "isLineBreakingObject"},
	{"isPageBreakingObject", "isPageBreakingObject"},
	{"hasAriaAttribute", "hasAriaAttribute"},
	{"touchPassThrough", "touchPassThrough"},
}

// intRules parse the value as an integer whenever the key is present. The
// dump often represents these as numeric strings.
var intRules = []attrRule{
	{"scrollX", "scrollX"},
	{"scrollXMin", "scrollXMin"},
	{"scrollXMax", "scrollXMax"},
	{"scrollY", "scrollY"},
	{"scrollYMin", "scrollYMin"},
	{"scrollYMax", "scrollYMax"},
	{"ariaColumnCount", "ariaColumnCount"},
	{"ariaCellColumnIndex", "ariaCellColumnIndex"},
	{"ariaCellColumnSpan", "ariaCellColumnSpan"},
	{"ariaRowCount", "ariaRowCount"},
	{"ariaCellRowIndex", "ariaCellRowIndex"},
	{"ariaCellRowSpan", "ariaCellRowSpan"},
	{"tableRowCount", "tableRowCount"},
	{"tableColumnCount", "tableColumnCount"},
	{"tableHeaderId", "tableHeader"},
	{"tableRowIndex", "tableRowIndex"},
	{"tableRowHeaderId", "tableRowHeader"},
	{"tableColumnIndex", "tableColumnIndex"},
	{"tableColumnHeaderId", "tableColumnHeader"},
	{"tableCellColumnIndex", "tableCellColumnIndex"},
	{"tableCellColumnSpan", "tableCellColumnSpan"},
	{"tableCellRowIndex", "tableCellRowIndex"},
	{"tableCellRowSpan", "tableCellRowSpan"},
	{"hierarchicalLevel", "hierarchicalLevel"},
	{"activedescendantId", "activeDescendant"},
	{"errormessageId", "errorMessage"},
	{"inPageLinkTargetId", "inPageLinkTarget"},
	{"memberOfId", "memberOf"},
	{"nextOnLineId", "nextOnLine"},
	{"popupForId", "popupFor"},
	{"previousOnLineId", "previousOnLine"},
	{"setSize", "setSize"},
	{"posInSet", "posInSet"},
	{"previousFocusId", "previousFocus"},
	{"nextFocusId", "nextFocus"},
}

// colorRules parse the value as a base-16 pixel value whenever present.
var colorRules = []attrRule{
	{"colorValue", "colorValue"},
	{"backgroundColor", "backgroundColor"},
	{"color", "foregroundColor"},
}

// roleRenames translates dump role names that are spelled differently in the
// output schema. Unlisted roles pass through unchanged.
var roleRenames = map[string]string{
	"popUpButton": "popupButton",
}

func translateRole(role string) string {
	if renamed, ok := roleRenames[role]; ok {
		return renamed
	}
	return role
}
