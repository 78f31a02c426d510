package grammar

import (
	"github.com/ghettovoice/abnf"
)

// Core rules (RFC 5234 appendix B.1).
var (
	alpha = abnf.Alt(`ALPHA`,
		abnf.Range(`%x41-5A`, []byte{0x41}, []byte{0x5A}),
		abnf.Range(`%x61-7A`, []byte{0x61}, []byte{0x7A}),
	)
	digit  = abnf.Range(`DIGIT`, []byte{0x30}, []byte{0x39})
	hexdig = abnf.Alt(`HEXDIG`,
		digit,
		abnf.Range(`%x41-46`, []byte{0x41}, []byte{0x46}),
		abnf.Range(`%x61-66`, []byte{0x61}, []byte{0x66}),
	)
	dquote  = abnf.Literal(`DQUOTE`, []byte{0x22})
	sp      = abnf.Literal(`SP`, []byte{0x20})
	htab    = abnf.Literal(`HTAB`, []byte{0x09})
	vchar   = abnf.Range(`VCHAR`, []byte{0x21}, []byte{0x7E})
	obsText = abnf.Range(`obs-text`, []byte{0x80}, []byte{0xFF})
)

// HTTP field value rules (RFC 7230 section 3.2).
var (
	tchar = abnf.Alt(`tchar`,
		abnf.Literal(`"!"`, []byte{'!'}),
		abnf.Literal(`"#"`, []byte{'#'}),
		abnf.Literal(`"$"`, []byte{'$'}),
		abnf.Literal(`"%"`, []byte{'%'}),
		abnf.Literal(`"&"`, []byte{'&'}),
		abnf.Literal(`"'"`, []byte{'\''}),
		abnf.Literal(`"*"`, []byte{'*'}),
		abnf.Literal(`"+"`, []byte{'+'}),
		abnf.Literal(`"-"`, []byte{'-'}),
		abnf.Literal(`"."`, []byte{'.'}),
		abnf.Literal(`"^"`, []byte{'^'}),
		abnf.Literal(`"_"`, []byte{'_'}),
		abnf.Literal("\"`\"", []byte{'`'}),
		abnf.Literal(`"|"`, []byte{'|'}),
		abnf.Literal(`"~"`, []byte{'~'}),
		digit,
		alpha,
	)

	token = abnf.Repeat1Inf(`token`, tchar)

	ows = abnf.Repeat0Inf(`OWS`, abnf.Alt(`SP / HTAB`, sp, htab))

	qdtext = abnf.Alt(`qdtext`,
		htab,
		sp,
		abnf.Literal(`%x21`, []byte{0x21}),
		abnf.Range(`%x23-5B`, []byte{0x23}, []byte{0x5B}),
		abnf.Range(`%x5D-7E`, []byte{0x5D}, []byte{0x7E}),
		obsText,
	)

	quotedPair = abnf.Concat(`quoted-pair`,
		abnf.Literal(`"\"`, []byte{'\\'}),
		abnf.Alt(`HTAB / SP / VCHAR / obs-text`, htab, sp, vchar, obsText),
	)

	quotedString = abnf.Concat(`quoted-string`,
		dquote,
		abnf.Repeat0Inf(`*( qdtext / quoted-pair )`, abnf.Alt(`qdtext / quoted-pair`, qdtext, quotedPair)),
		dquote,
	)
)

// Media type shape (RFC 6838 section 4.2, with RFC 7231 parameters).
var mediaType = abnf.Concat(`media-type`,
	token,
	abnf.Literal(`"/"`, []byte{'/'}),
	token,
	abnf.Repeat0Inf(`*( OWS ";" OWS parameter )`,
		abnf.Concat(`OWS ";" OWS parameter`,
			ows,
			abnf.Literal(`";"`, []byte{';'}),
			ows,
			abnf.Concat(`parameter`,
				token,
				abnf.Literal(`"="`, []byte{'='}),
				abnf.Alt(`token / quoted-string`, token, quotedString),
			),
		),
	),
)

// URI rules (RFC 3986 appendix A).
var (
	unreserved = abnf.Alt(`unreserved`,
		alpha,
		digit,
		abnf.Literal(`"-"`, []byte{'-'}),
		abnf.Literal(`"."`, []byte{'.'}),
		abnf.Literal(`"_"`, []byte{'_'}),
		abnf.Literal(`"~"`, []byte{'~'}),
	)

	pctEncoded = abnf.Concat(`pct-encoded`, abnf.Literal(`"%"`, []byte{'%'}), hexdig, hexdig)

	subDelims = abnf.Alt(`sub-delims`,
		abnf.Literal(`"!"`, []byte{'!'}),
		abnf.Literal(`"$"`, []byte{'$'}),
		abnf.Literal(`"&"`, []byte{'&'}),
		abnf.Literal(`"'"`, []byte{'\''}),
		abnf.Literal(`"("`, []byte{'('}),
		abnf.Literal(`")"`, []byte{')'}),
		abnf.Literal(`"*"`, []byte{'*'}),
		abnf.Literal(`"+"`, []byte{'+'}),
		abnf.Literal(`","`, []byte{','}),
		abnf.Literal(`";"`, []byte{';'}),
		abnf.Literal(`"="`, []byte{'='}),
	)

	colon  = abnf.Literal(`":"`, []byte{':'})
	atSign = abnf.Literal(`"@"`, []byte{'@'})
	slash  = abnf.Literal(`"/"`, []byte{'/'})

	pchar = abnf.Alt(`pchar`, unreserved, pctEncoded, subDelims, colon, atSign)

	scheme = abnf.Concat(`scheme`,
		alpha,
		abnf.Repeat0Inf(`*( ALPHA / DIGIT / "+" / "-" / "." )`,
			abnf.Alt(`ALPHA / DIGIT / "+" / "-" / "."`,
				alpha,
				digit,
				abnf.Literal(`"+"`, []byte{'+'}),
				abnf.Literal(`"-"`, []byte{'-'}),
				abnf.Literal(`"."`, []byte{'.'}),
			),
		),
	)

	userinfo = abnf.Repeat0Inf(`userinfo`,
		abnf.Alt(`unreserved / pct-encoded / sub-delims / ":"`, unreserved, pctEncoded, subDelims, colon),
	)

	decOctet = abnf.Alt(`dec-octet`,
		abnf.Concat(`"25" %x30-35`, abnf.Literal(`"25"`, []byte("25")), abnf.Range(`%x30-35`, []byte{0x30}, []byte{0x35})),
		abnf.Concat(`"2" %x30-34 DIGIT`, abnf.Literal(`"2"`, []byte{'2'}), abnf.Range(`%x30-34`, []byte{0x30}, []byte{0x34}), digit),
		abnf.Concat(`"1" 2DIGIT`, abnf.Literal(`"1"`, []byte{'1'}), digit, digit),
		abnf.Concat(`%x31-39 DIGIT`, abnf.Range(`%x31-39`, []byte{0x31}, []byte{0x39}), digit),
		digit,
	)

	ipv4Address = abnf.Concat(`IPv4address`,
		decOctet, abnf.Literal(`"."`, []byte{'.'}),
		decOctet, abnf.Literal(`"."`, []byte{'.'}),
		decOctet, abnf.Literal(`"."`, []byte{'.'}),
		decOctet,
	)

	h16 = abnf.Repeat(`h16`, 1, 4, hexdig)

	h16Colon = abnf.Concat(`h16 ":"`, h16, colon)

	ls32 = abnf.Alt(`ls32`, abnf.Concat(`h16 ":" h16`, h16, colon, h16), ipv4Address)

	dColon = abnf.Literal(`"::"`, []byte("::"))

	ipv6Address = abnf.Alt(`IPv6address`,
		abnf.Concat(`6( h16 ":" ) ls32`, abnf.RepeatN(`6( h16 ":" )`, 6, h16Colon), ls32),
		abnf.Concat(`"::" 5( h16 ":" ) ls32`, dColon, abnf.RepeatN(`5( h16 ":" )`, 5, h16Colon), ls32),
		abnf.Concat(`[ h16 ] "::" 4( h16 ":" ) ls32`,
			abnf.Optional(`[ h16 ]`, h16), dColon, abnf.RepeatN(`4( h16 ":" )`, 4, h16Colon), ls32),
		abnf.Concat(`[ *1( h16 ":" ) h16 ] "::" 3( h16 ":" ) ls32`,
			abnf.Optional(`[ *1( h16 ":" ) h16 ]`, abnf.Concat(`*1( h16 ":" ) h16`, abnf.Repeat(`*1( h16 ":" )`, 0, 1, h16Colon), h16)),
			dColon, abnf.RepeatN(`3( h16 ":" )`, 3, h16Colon), ls32),
		abnf.Concat(`[ *2( h16 ":" ) h16 ] "::" 2( h16 ":" ) ls32`,
			abnf.Optional(`[ *2( h16 ":" ) h16 ]`, abnf.Concat(`*2( h16 ":" ) h16`, abnf.Repeat(`*2( h16 ":" )`, 0, 2, h16Colon), h16)),
			dColon, abnf.RepeatN(`2( h16 ":" )`, 2, h16Colon), ls32),
		abnf.Concat(`[ *3( h16 ":" ) h16 ] "::" h16 ":" ls32`,
			abnf.Optional(`[ *3( h16 ":" ) h16 ]`, abnf.Concat(`*3( h16 ":" ) h16`, abnf.Repeat(`*3( h16 ":" )`, 0, 3, h16Colon), h16)),
			dColon, h16Colon, ls32),
		abnf.Concat(`[ *4( h16 ":" ) h16 ] "::" ls32`,
			abnf.Optional(`[ *4( h16 ":" ) h16 ]`, abnf.Concat(`*4( h16 ":" ) h16`, abnf.Repeat(`*4( h16 ":" )`, 0, 4, h16Colon), h16)),
			dColon, ls32),
		abnf.Concat(`[ *5( h16 ":" ) h16 ] "::" h16`,
			abnf.Optional(`[ *5( h16 ":" ) h16 ]`, abnf.Concat(`*5( h16 ":" ) h16`, abnf.Repeat(`*5( h16 ":" )`, 0, 5, h16Colon), h16)),
			dColon, h16),
		abnf.Concat(`[ *6( h16 ":" ) h16 ] "::"`,
			abnf.Optional(`[ *6( h16 ":" ) h16 ]`, abnf.Concat(`*6( h16 ":" ) h16`, abnf.Repeat(`*6( h16 ":" )`, 0, 6, h16Colon), h16)),
			dColon),
	)

	ipvFuture = abnf.Concat(`IPvFuture`,
		abnf.Literal(`"v"`, []byte{'v'}),
		abnf.Repeat1Inf(`1*HEXDIG`, hexdig),
		abnf.Literal(`"."`, []byte{'.'}),
		abnf.Repeat1Inf(`1*( unreserved / sub-delims / ":" )`,
			abnf.Alt(`unreserved / sub-delims / ":"`, unreserved, subDelims, colon)),
	)

	ipLiteral = abnf.Concat(`IP-literal`,
		abnf.Literal(`"["`, []byte{'['}),
		abnf.Alt(`IPv6address / IPvFuture`, ipv6Address, ipvFuture),
		abnf.Literal(`"]"`, []byte{']'}),
	)

	regName = abnf.Repeat0Inf(`reg-name`,
		abnf.Alt(`unreserved / pct-encoded / sub-delims`, unreserved, pctEncoded, subDelims),
	)

	host = abnf.Alt(`host`, ipLiteral, ipv4Address, regName)

	port = abnf.Repeat0Inf(`port`, digit)

	authority = abnf.Concat(`authority`,
		abnf.Optional(`[ userinfo "@" ]`, abnf.Concat(`userinfo "@"`, userinfo, atSign)),
		host,
		abnf.Optional(`[ ":" port ]`, abnf.Concat(`":" port`, colon, port)),
	)

	segment = abnf.Repeat0Inf(`segment`, pchar)

	segmentNz = abnf.Repeat1Inf(`segment-nz`, pchar)

	segmentNzNc = abnf.Repeat1Inf(`segment-nz-nc`,
		abnf.Alt(`unreserved / pct-encoded / sub-delims / "@"`, unreserved, pctEncoded, subDelims, atSign),
	)

	slashSegment = abnf.Concat(`"/" segment`, slash, segment)

	pathAbempty = abnf.Repeat0Inf(`path-abempty`, slashSegment)

	pathAbsolute = abnf.Concat(`path-absolute`,
		slash,
		abnf.Optional(`[ segment-nz *( "/" segment ) ]`,
			abnf.Concat(`segment-nz *( "/" segment )`, segmentNz, abnf.Repeat0Inf(`*( "/" segment )`, slashSegment))),
	)

	pathNoscheme = abnf.Concat(`path-noscheme`, segmentNzNc, abnf.Repeat0Inf(`*( "/" segment )`, slashSegment))

	pathRootless = abnf.Concat(`path-rootless`, segmentNz, abnf.Repeat0Inf(`*( "/" segment )`, slashSegment))

	// path-empty is expressed by making the whole part optional.
	hierPart = abnf.Optional(`hier-part`, abnf.Alt(`hier-part alts`,
		abnf.Concat(`"//" authority path-abempty`, abnf.Literal(`"//"`, []byte("//")), authority, pathAbempty),
		pathAbsolute,
		pathRootless,
	))

	relativePart = abnf.Optional(`relative-part`, abnf.Alt(`relative-part alts`,
		abnf.Concat(`"//" authority path-abempty`, abnf.Literal(`"//"`, []byte("//")), authority, pathAbempty),
		pathAbsolute,
		pathNoscheme,
	))

	query = abnf.Repeat0Inf(`query`,
		abnf.Alt(`pchar / "/" / "?"`, pchar, slash, abnf.Literal(`"?"`, []byte{'?'})),
	)

	fragment = abnf.Repeat0Inf(`fragment`,
		abnf.Alt(`pchar / "/" / "?"`, pchar, slash, abnf.Literal(`"?"`, []byte{'?'})),
	)

	uri = abnf.Concat(`URI`,
		scheme,
		colon,
		hierPart,
		abnf.Optional(`[ "?" query ]`, abnf.Concat(`"?" query`, abnf.Literal(`"?"`, []byte{'?'}), query)),
		abnf.Optional(`[ "#" fragment ]`, abnf.Concat(`"#" fragment`, abnf.Literal(`"#"`, []byte{'#'}), fragment)),
	)

	relativeRef = abnf.Concat(`relative-ref`,
		relativePart,
		abnf.Optional(`[ "?" query ]`, abnf.Concat(`"?" query`, abnf.Literal(`"?"`, []byte{'?'}), query)),
		abnf.Optional(`[ "#" fragment ]`, abnf.Concat(`"#" fragment`, abnf.Literal(`"#"`, []byte{'#'}), fragment)),
	)

	uriReference = abnf.Alt(`URI-reference`, uri, relativeRef)
)
