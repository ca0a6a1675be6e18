package constants

// DropdownIconSVG is the default toggle icon: a downward chevron.
const DropdownIconSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="12" height="8" viewBox="0 0 12 8">
<path d="M1 1.5 L6 6.5 L11 1.5" fill="none" stroke="#6b6b70" stroke-width="1.6" stroke-linecap="round" stroke-linejoin="round"/>
</svg>`

// HeartIconSVG is an alternative toggle icon used by the demo.
const HeartIconSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 16 16">
<path d="M8 14 L2.2 8.4 C0.6 6.8 0.6 4.3 2.2 2.9 C3.7 1.6 6 1.8 8 4 C10 1.8 12.3 1.6 13.8 2.9 C15.4 4.3 15.4 6.8 13.8 8.4 Z" fill="#e0245e"/>
</svg>`
